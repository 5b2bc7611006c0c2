package config

import (
	"github.com/glintclean/weekplan/core/hours"
	"github.com/glintclean/weekplan/core/model"
)

// HoursConfig overrides the operating-day table. Zero values fall back to
// the standard scheme: ten slots from 8 AM, morning 0-2, noon 3-5,
// afternoon 6-9.
type HoursConfig struct {
	DayStart  int   `json:"day_start"`
	PerDay    int   `json:"per_day"`
	Morning   []int `json:"morning"`
	Noon      []int `json:"noon"`
	Afternoon []int `json:"afternoon"`
}

// SetDefaults fills unset fields from the standard table.
func (c *HoursConfig) SetDefaults() {
	def := hours.Default()
	if c.DayStart == 0 {
		c.DayStart = def.DayStart
	}
	if c.PerDay == 0 {
		c.PerDay = def.PerDay
	}
	if c.Morning == nil {
		c.Morning = def.Windows[model.Morning]
	}
	if c.Noon == nil {
		c.Noon = def.Windows[model.Noon]
	}
	if c.Afternoon == nil {
		c.Afternoon = def.Windows[model.Afternoon]
	}
}

// Table builds the operating-hours table from the configuration.
func (c HoursConfig) Table() hours.Table {
	return hours.Table{
		DayStart: c.DayStart,
		PerDay:   c.PerDay,
		Windows: map[model.TimeWindow][]int{
			model.Morning:   c.Morning,
			model.Noon:      c.Noon,
			model.Afternoon: c.Afternoon,
		},
	}
}

// Validate checks the window ranges for overlap and bounds.
func (c HoursConfig) Validate() error {
	return c.Table().Validate()
}
