package planner

import (
	"testing"
	"time"

	"github.com/glintclean/weekplan/core/hours"
	"github.com/glintclean/weekplan/core/metrics"
	"github.com/glintclean/weekplan/core/model"
	"github.com/glintclean/weekplan/internal/eventbus"
)

func ptr(v float64) *float64 { return &v }

func testRoster() ([]model.Staff, []model.Client) {
	staff := []model.Staff{
		{
			ID: "S1", CleansWindows: true,
			Availability: model.WeekSchedule{model.Monday: model.Morning},
			Location:     &model.GeoPoint{Latitude: 0, Longitude: 0},
		},
		{
			ID:           "S2",
			Availability: model.WeekSchedule{model.Monday: model.Morning},
			Location:     &model.GeoPoint{Latitude: 0, Longitude: 1},
		},
	}
	clients := []model.Client{
		{ID: "C1", Windows: true, Requested: model.WeekSchedule{model.Monday: model.Morning}},
		{ID: "C2", EstimatedHours: ptr(2), Requested: model.WeekSchedule{model.Tuesday: model.Noon}},
	}
	return staff, clients
}

func TestPlanner_Run(t *testing.T) {
	bus := eventbus.New()
	sub := bus.Subscribe()
	p := New(hours.Default(), nil, bus)
	staff, clients := testRoster()

	report, err := p.Run(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), staff, clients)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.RunID == "" {
		t.Errorf("missing run ID")
	}
	if len(report.Slots) != 3 {
		t.Errorf("expected 3 slots, got %d", len(report.Slots))
	}
	if got := report.Match.ClientSlots["C1"]; len(got) != 3 {
		t.Errorf("C1 should match every morning hour, got %v", got)
	}
	if got := report.Match.ClientSlots["C2"]; len(got) != 0 {
		t.Errorf("C2 requested an uncovered day, got %v", got)
	}
	if report.Proximity["S1"] != "S2=69.1" || report.Proximity["S2"] != "S1=69.1" {
		t.Errorf("proximity hints = %v", report.Proximity)
	}

	// Events are published synchronously before Run returns.
	ev := <-sub
	slotEv, ok := ev.(metrics.SlotTableEvent)
	if !ok {
		t.Fatalf("first event should be SlotTableEvent, got %T", ev)
	}
	if slotEv.RunID != report.RunID || len(slotEv.Samples) != 3 {
		t.Errorf("slot event = %+v", slotEv)
	}
	ev = <-sub
	runEv, ok := ev.(metrics.RunCompletedEvent)
	if !ok {
		t.Fatalf("second event should be RunCompletedEvent, got %T", ev)
	}
	if runEv.Run.Staff != 2 || runEv.Run.Clients != 2 || runEv.Run.MatchedClients != 1 || runEv.Run.InfeasibleClients != 1 {
		t.Errorf("run summary = %+v", runEv.Run)
	}
}

func TestPlanner_RejectsInvalidTable(t *testing.T) {
	bad := hours.Table{
		PerDay: 2,
		Windows: map[model.TimeWindow][]int{
			model.Morning: {0, 1},
			model.Noon:    {1},
		},
	}
	p := New(bad, nil, nil)
	if _, err := p.Run(time.Now(), nil, nil); err == nil {
		t.Fatalf("expected validation error")
	}
}
