// Package hours holds the static mapping from time windows to hour slots of
// the operating day. The table is injectable so alternate operating-hour
// schemes can be configured, but it never changes during a planning run.
package hours

import (
	"fmt"

	"github.com/glintclean/weekplan/core/model"
)

// Table maps each time window to its fixed hour indices within the operating
// day. Hour index 0 is DayStart o'clock.
type Table struct {
	DayStart int
	PerDay   int
	Windows  map[model.TimeWindow][]int
}

// Default returns the standard operating day: ten one-hour slots starting at
// 8 AM, morning 8-11, noon 11-2, afternoon 2-6.
func Default() Table {
	return Table{
		DayStart: 8,
		PerDay:   10,
		Windows: map[model.TimeWindow][]int{
			model.Morning:   {0, 1, 2},
			model.Noon:      {3, 4, 5},
			model.Afternoon: {6, 7, 8, 9},
		},
	}
}

// Validate checks that every hour index lies inside the operating day and
// that no two windows claim the same hour. Gaps are allowed and mean
// unavailable.
func (t Table) Validate() error {
	if t.PerDay <= 0 {
		return fmt.Errorf("per_day must be positive, got %d", t.PerDay)
	}
	claimed := make(map[int]model.TimeWindow, t.PerDay)
	for _, win := range model.Windows {
		for _, hour := range t.Windows[win] {
			if hour < 0 || hour >= t.PerDay {
				return fmt.Errorf("window %s: hour index %d outside operating day [0,%d)", win.Name(), hour, t.PerDay)
			}
			if prev, ok := claimed[hour]; ok {
				return fmt.Errorf("hour index %d claimed by both %s and %s", hour, prev.Name(), win.Name())
			}
			claimed[hour] = win
		}
	}
	return nil
}

// Hours returns the hour indices belonging to one named window.
func (t Table) Hours(win model.TimeWindow) []int {
	return t.Windows[win]
}

// DayVector expands a window bitset into a per-hour boolean vector covering
// the whole operating day.
func (t Table) DayVector(w model.TimeWindow) []bool {
	vector := make([]bool, t.PerDay)
	for _, win := range model.Windows {
		if !w.Has(win) {
			continue
		}
		for _, hour := range t.Windows[win] {
			vector[hour] = true
		}
	}
	return vector
}

// Clock converts an hour index to its wall-clock hour.
func (t Table) Clock(hour int) int {
	return t.DayStart + hour
}
