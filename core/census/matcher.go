package census

import (
	"github.com/glintclean/weekplan/core/hours"
	"github.com/glintclean/weekplan/core/model"
)

// ClientJob annotates a client with its whole-hour duration and requirement
// flags for matching.
type ClientJob struct {
	ID            string
	Name          string
	DurationHours int
	NeedsPets     bool
	NeedsStairs   bool
	NeedsWindows  bool
	Requested     model.WeekSchedule
}

// NewClientJob derives the matching view of a client.
func NewClientJob(c model.Client) *ClientJob {
	return &ClientJob{
		ID:            c.ID,
		Name:          c.Name,
		DurationHours: c.DurationHours(),
		NeedsPets:     c.Pets,
		NeedsStairs:   c.Stairs,
		NeedsWindows:  c.Windows,
		Requested:     c.Requested,
	}
}

// Match is the client side of the feasibility census. The slot side lives in
// SlotCapacity.Clients; both views describe the same relation.
type Match struct {
	// Jobs preserves client input order.
	Jobs []*ClientJob
	// ClientSlots maps client ID to its feasible start slots, ordered by
	// day then hour. An empty list means infeasible under current
	// staffing; that is a result, not an error.
	ClientSlots map[string][]SlotKey
}

// Infeasible returns the IDs of clients with no feasible start slot, in
// input order.
func (m Match) Infeasible() []string {
	var ids []string
	for _, job := range m.Jobs {
		if len(m.ClientSlots[job.ID]) == 0 {
			ids = append(ids, job.ID)
		}
	}
	return ids
}

// MatchClients finds, for every client, every slot where its multi-hour job
// can start inside one contiguous available block and where the slot's
// counters satisfy the client's hard requirements. Matches are recorded in
// both directions. Counters are never decremented: the census deliberately
// allows more candidates per slot than staff could serve, leaving the
// conflict-free allocation to a downstream optimizer.
func MatchClients(clients []model.Client, slots SlotTable, table hours.Table) Match {
	m := Match{
		Jobs:        make([]*ClientJob, 0, len(clients)),
		ClientSlots: make(map[string][]SlotKey, len(clients)),
	}
	for _, client := range clients {
		job := NewClientJob(client)
		m.Jobs = append(m.Jobs, job)
		m.ClientSlots[job.ID] = []SlotKey{}
		for _, day := range model.Weekdays {
			vector := table.DayVector(client.Requested.On(day))
			for hour := range vector {
				if !vector[hour] {
					continue
				}
				if !fits(vector, hour, job.DurationHours) {
					continue
				}
				slot, ok := slots[SlotKey{Day: day, Hour: hour}]
				if !ok {
					// No staff cover this hour at all: zero
					// supply, not an error.
					continue
				}
				if job.NeedsPets && slot.PetsAvailable == 0 {
					continue
				}
				if job.NeedsStairs && slot.StairsAvailable == 0 {
					continue
				}
				if job.NeedsWindows && slot.WindowsAvailable == 0 {
					continue
				}
				slot.Clients = append(slot.Clients, job)
				m.ClientSlots[job.ID] = append(m.ClientSlots[job.ID], slot.Key())
			}
		}
	}
	return m
}

// fits reports whether duration contiguous hours starting at start are all
// inside the operating day and all available. A job never wraps into the
// next day.
func fits(vector []bool, start, duration int) bool {
	for offset := 0; offset < duration; offset++ {
		hour := start + offset
		if hour >= len(vector) || !vector[hour] {
			return false
		}
	}
	return true
}
