package geo

import (
	"math"
	"testing"

	"github.com/glintclean/weekplan/core/model"
)

func TestMilesBetween_IdenticalPoints(t *testing.T) {
	if d := MilesBetween(47.6, -122.3, 47.6, -122.3); d != 0 {
		t.Errorf("distance between identical points = %v, want 0", d)
	}
}

func TestMilesBetween_Symmetric(t *testing.T) {
	a := MilesBetween(47.6097, -122.3331, 40.7128, -74.0060)
	b := MilesBetween(40.7128, -74.0060, 47.6097, -122.3331)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("asymmetric distance: %v vs %v", a, b)
	}
}

func TestMilesBetween_OneDegreeAtEquator(t *testing.T) {
	miles := MilesBetween(0, 0, 0, 1)
	if math.Abs(miles-69.1) > 0.05 {
		t.Errorf("one degree of longitude at the equator = %v, want ~69.1", miles)
	}
}

func locatedStaff(id string, lat, lon float64) model.Staff {
	return model.Staff{ID: id, Location: &model.GeoPoint{Latitude: lat, Longitude: lon}}
}

func TestRankDistances_SortsAndFormats(t *testing.T) {
	staff := []model.Staff{
		locatedStaff("S1", 0, 0),
		locatedStaff("S2", 0, 1),
		locatedStaff("S3", 0, 2),
	}
	got := RankDistances(staff, staff[0], 1)
	if got != "S2=69.1|S3=138.2" {
		t.Errorf("RankDistances = %q", got)
	}
}

func TestRankDistances_NearestFirst(t *testing.T) {
	staff := []model.Staff{
		locatedStaff("S1", 0, 0),
		locatedStaff("far", 0, 3),
		locatedStaff("near", 0, 1),
	}
	got := RankDistances(staff, staff[0], 1)
	if got != "near=69.1|far=207.3" {
		t.Errorf("RankDistances = %q", got)
	}
}

func TestRankDistances_MissingSourceLocation(t *testing.T) {
	staff := []model.Staff{
		{ID: "S1"},
		locatedStaff("S2", 0, 1),
	}
	if got := RankDistances(staff, staff[0], 1); got != "" {
		t.Errorf("source without location should yield empty, got %q", got)
	}
}

func TestRankDistances_SkipsUnresolvedMembers(t *testing.T) {
	staff := []model.Staff{
		locatedStaff("S1", 0, 0),
		{ID: "S2"},
		locatedStaff("S3", 0, 1),
	}
	if got := RankDistances(staff, staff[0], 1); got != "S3=69.1" {
		t.Errorf("unresolved member should be skipped, got %q", got)
	}
}

func TestRankDistances_NoOtherResolvedMembers(t *testing.T) {
	staff := []model.Staff{
		locatedStaff("S1", 0, 0),
		{ID: "S2"},
	}
	if got := RankDistances(staff, staff[0], 1); got != "" {
		t.Errorf("expected empty ranking, got %q", got)
	}
}
