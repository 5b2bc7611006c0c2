package census

import (
	"sort"

	"github.com/glintclean/weekplan/core/model"
)

// SlotKey identifies one (weekday, hour-index) cell of the operating week.
type SlotKey struct {
	Day  model.Weekday
	Hour int
}

// SlotCapacity aggregates staff supply for one hour slot. It is the only
// mutable type in the engine: BuildSlots owns the counters, MatchClients
// only appends candidate clients and never touches the counts.
type SlotCapacity struct {
	Day              model.Weekday
	Hour             int
	Available        int
	PetsAvailable    int
	StairsAvailable  int
	WindowsAvailable int
	Clients          []*ClientJob
}

// Key returns the slot's position in the operating week.
func (s *SlotCapacity) Key() SlotKey {
	return SlotKey{Day: s.Day, Hour: s.Hour}
}

// SlotTable holds every slot covered by at least one staff member, keyed by
// (day, hour). Absence of a key means zero supply, which is a normal value
// and never an error.
type SlotTable map[SlotKey]*SlotCapacity

// Ordered returns the slots sorted by day then hour. Map iteration order is
// never used for output.
func (t SlotTable) Ordered() []*SlotCapacity {
	slots := make([]*SlotCapacity, 0, len(t))
	for _, slot := range t {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Day != slots[j].Day {
			return slots[i].Day < slots[j].Day
		}
		return slots[i].Hour < slots[j].Hour
	})
	return slots
}
