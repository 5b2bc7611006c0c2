// Package scenario loads planning scenarios: a week start plus staff and
// client rosters with per-day availability codes. Scenarios stand in for the
// upstream enrichment pipeline that normally materializes rosters.
package scenario

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/glintclean/weekplan/core/model"
)

// Days carries the per-day availability codes of one roster entry. Missing
// days mean unavailable.
type Days struct {
	Sunday    string `yaml:"sunday,omitempty"`
	Monday    string `yaml:"monday,omitempty"`
	Tuesday   string `yaml:"tuesday,omitempty"`
	Wednesday string `yaml:"wednesday,omitempty"`
	Thursday  string `yaml:"thursday,omitempty"`
	Friday    string `yaml:"friday,omitempty"`
	Saturday  string `yaml:"saturday,omitempty"`
}

func (d Days) schedule() (model.WeekSchedule, error) {
	return model.NewWeekSchedule(d.Sunday, d.Monday, d.Tuesday, d.Wednesday, d.Thursday, d.Friday, d.Saturday)
}

// StaffDef describes one staff member in a scenario file.
type StaffDef struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	PetAllergy      bool     `yaml:"pet_allergy"`
	LimitedMobility bool     `yaml:"limited_mobility"`
	CleansWindows   bool     `yaml:"cleans_windows"`
	Days            Days     `yaml:"days"`
	Latitude        *float64 `yaml:"latitude,omitempty"`
	Longitude       *float64 `yaml:"longitude,omitempty"`
}

// ToModel converts the definition. A bad day code fails the whole record
// with the record identity and offending character in the error.
func (d StaffDef) ToModel() (model.Staff, error) {
	availability, err := d.Days.schedule()
	if err != nil {
		return model.Staff{}, fmt.Errorf("staff %s: %w", d.ID, err)
	}
	return model.Staff{
		ID:              d.ID,
		Name:            d.Name,
		PetAllergy:      d.PetAllergy,
		LimitedMobility: d.LimitedMobility,
		CleansWindows:   d.CleansWindows,
		Availability:    availability,
		Location:        location(d.Latitude, d.Longitude),
	}, nil
}

// ClientDef describes one client in a scenario file.
type ClientDef struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Pets           bool     `yaml:"pets"`
	Stairs         bool     `yaml:"stairs"`
	Windows        bool     `yaml:"windows"`
	EstimatedHours *float64 `yaml:"estimated_hours,omitempty"`
	Days           Days     `yaml:"days"`
	Latitude       *float64 `yaml:"latitude,omitempty"`
	Longitude      *float64 `yaml:"longitude,omitempty"`
}

// ToModel converts the definition. A bad day code fails the whole record.
func (d ClientDef) ToModel() (model.Client, error) {
	requested, err := d.Days.schedule()
	if err != nil {
		return model.Client{}, fmt.Errorf("client %s: %w", d.ID, err)
	}
	return model.Client{
		ID:             d.ID,
		Name:           d.Name,
		Pets:           d.Pets,
		Stairs:         d.Stairs,
		Windows:        d.Windows,
		EstimatedHours: d.EstimatedHours,
		Requested:      requested,
		Location:       location(d.Latitude, d.Longitude),
	}, nil
}

// Scenario is one planning week's input.
type Scenario struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	WeekStart   string      `yaml:"week_start,omitempty"`
	Staff       []StaffDef  `yaml:"staff"`
	Clients     []ClientDef `yaml:"clients"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Rosters converts every definition, aborting on the first bad record.
func (s *Scenario) Rosters() ([]model.Staff, []model.Client, error) {
	staff := make([]model.Staff, 0, len(s.Staff))
	for _, def := range s.Staff {
		member, err := def.ToModel()
		if err != nil {
			return nil, nil, err
		}
		staff = append(staff, member)
	}
	clients := make([]model.Client, 0, len(s.Clients))
	for _, def := range s.Clients {
		client, err := def.ToModel()
		if err != nil {
			return nil, nil, err
		}
		clients = append(clients, client)
	}
	return staff, clients, nil
}

// Week returns the scenario's week start, defaulting to the most recent
// Monday when the field is absent.
func (s *Scenario) Week() (time.Time, error) {
	if s.WeekStart != "" {
		t, err := time.Parse("2006-01-02", s.WeekStart)
		if err != nil {
			return time.Time{}, fmt.Errorf("week_start: %w", err)
		}
		return t, nil
	}
	return MostRecentMonday(time.Now()), nil
}

// MostRecentMonday returns the Monday on or before t, at midnight UTC.
func MostRecentMonday(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func location(lat, lon *float64) *model.GeoPoint {
	if lat == nil || lon == nil {
		return nil
	}
	return &model.GeoPoint{Latitude: *lat, Longitude: *lon}
}
