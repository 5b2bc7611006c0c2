// Package geo provides the great-circle distance helpers used to annotate
// staff rosters with proximity hints for team formation.
package geo

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/glintclean/weekplan/core/model"
)

const earthRadiusMiles = 3958.8

// MilesBetween returns the haversine great-circle distance in miles between
// two coordinates given in degrees.
func MilesBetween(lat1, lon1, lat2, lon2 float64) float64 {
	deltaLat := radians(lat2 - lat1)
	deltaLon := radians(lon2 - lon1)

	a := math.Pow(math.Sin(deltaLat/2), 2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Pow(math.Sin(deltaLon/2), 2)
	// Clamp before the inverse sine: accumulated rounding can push a
	// fractionally above 1.
	c := 2 * math.Asin(math.Min(1, math.Sqrt(a)))

	return earthRadiusMiles * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RankDistances renders the distance from source to every other staff member
// with a resolved location as "id=miles" pairs joined by '|', nearest first,
// miles fixed to decimalPlaces digits. Members without coordinates are
// skipped, not zero-filled. The result is empty when the source has no
// location or when nobody else has one. Ties keep roster order.
func RankDistances(staff []model.Staff, source model.Staff, decimalPlaces int) string {
	if source.Location == nil {
		return ""
	}

	type entry struct {
		id    string
		miles float64
	}
	entries := make([]entry, 0, len(staff))
	for _, member := range staff {
		if strings.EqualFold(member.ID, source.ID) {
			continue
		}
		if member.Location == nil {
			continue
		}
		miles := MilesBetween(
			source.Location.Latitude, source.Location.Longitude,
			member.Location.Latitude, member.Location.Longitude)
		entries = append(entries, entry{id: member.ID, miles: miles})
	}
	if len(entries) == 0 {
		return ""
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].miles < entries[j].miles })

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('|')
		}
		fmt.Fprintf(&b, "%s=%.*f", e.id, decimalPlaces, e.miles)
	}
	return b.String()
}
