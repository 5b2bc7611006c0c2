// Package census computes the weekly feasibility census: staff availability
// expanded into per-hour supply counters, and clients matched against those
// counters under their hard requirements. The census is bidirectional and
// denormalized on purpose; it is the input for a later assignment stage, not
// an assignment itself.
package census

import (
	"github.com/glintclean/weekplan/core/hours"
	"github.com/glintclean/weekplan/core/model"
)

// BuildSlots expands each staff member's weekly availability into hour slots
// and accumulates supply per capability. A slot is created on first touch;
// each counter grows by at most one per covering staff member, so a member
// whose windows were configured to overlap on an hour is still counted once.
func BuildSlots(staff []model.Staff, table hours.Table) SlotTable {
	slots := make(SlotTable, len(model.Weekdays)*table.PerDay)
	for _, member := range staff {
		for _, day := range model.Weekdays {
			windows := member.Availability.On(day)
			if windows == model.WindowNone {
				continue
			}
			covered := make([]bool, table.PerDay)
			for _, win := range model.Windows {
				if !windows.Has(win) {
					continue
				}
				for _, hour := range table.Hours(win) {
					if covered[hour] {
						continue
					}
					covered[hour] = true
					key := SlotKey{Day: day, Hour: hour}
					slot := slots[key]
					if slot == nil {
						slot = &SlotCapacity{Day: day, Hour: hour}
						slots[key] = slot
					}
					slot.Available++
					if member.ToleratesPets() {
						slot.PetsAvailable++
					}
					if member.ClimbsStairs() {
						slot.StairsAvailable++
					}
					if member.CleansWindows {
						slot.WindowsAvailable++
					}
				}
			}
		}
	}
	return slots
}
