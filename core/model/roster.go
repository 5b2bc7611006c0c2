package model

import "math"

// GeoPoint is a resolved latitude/longitude pair in degrees.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// Staff describes one roster member: capability flags, weekly availability
// and an optional geocoded location. Location is nil when the address never
// resolved; such members still participate fully in capacity counting.
type Staff struct {
	ID              string
	Name            string
	PetAllergy      bool
	LimitedMobility bool
	CleansWindows   bool
	Availability    WeekSchedule
	Location        *GeoPoint
}

// ToleratesPets reports whether the member can serve homes with pets.
func (s Staff) ToleratesPets() bool { return !s.PetAllergy }

// ClimbsStairs reports whether the member can serve homes with stairs.
func (s Staff) ClimbsStairs() bool { return !s.LimitedMobility }

// Client describes one service request: requirement flags, requested weekly
// windows, an optional hour estimate and an optional geocoded location.
type Client struct {
	ID             string
	Name           string
	Pets           bool
	Stairs         bool
	Windows        bool
	EstimatedHours *float64
	Requested      WeekSchedule
	Location       *GeoPoint
}

// DurationHours returns the whole-hour job duration: the ceiling of the
// estimate, one hour when no estimate exists, never less than one.
func (c Client) DurationHours() int {
	estimate := 1.0
	if c.EstimatedHours != nil {
		estimate = *c.EstimatedHours
	}
	d := int(math.Ceil(estimate))
	if d < 1 {
		d = 1
	}
	return d
}
