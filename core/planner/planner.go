// Package planner runs one planning cycle over a materialized roster: slot
// capacity census, client feasibility matching, pressure analysis and staff
// proximity hints. The output Report is the input contract for a future
// assignment optimizer.
package planner

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/glintclean/weekplan/core/analysis"
	"github.com/glintclean/weekplan/core/census"
	"github.com/glintclean/weekplan/core/geo"
	"github.com/glintclean/weekplan/core/hours"
	"github.com/glintclean/weekplan/core/logger"
	"github.com/glintclean/weekplan/core/metrics"
	"github.com/glintclean/weekplan/core/model"
	"github.com/glintclean/weekplan/internal/eventbus"
)

// Report is the output of one planning cycle. It is not mutated after the
// run completes.
type Report struct {
	RunID     string
	WeekStart time.Time
	Slots     census.SlotTable
	Match     census.Match
	Pressure  analysis.Summary
	// Proximity maps staff ID to a ranked "id=miles|..." distance string,
	// a team-formation hint. Staff without coordinates have no entry.
	Proximity map[string]string
	Elapsed   time.Duration
}

// Planner computes the weekly feasibility census for one roster. The run is
// single-threaded batch work; there is no I/O inside it.
type Planner struct {
	Table            hours.Table
	TopBottlenecks   int
	DistanceDecimals int
	Log              logger.Logger
	Bus              eventbus.EventBus
}

// New creates a Planner with the given operating-hours table.
func New(table hours.Table, log logger.Logger, bus eventbus.EventBus) *Planner {
	return &Planner{
		Table:            table,
		TopBottlenecks:   5,
		DistanceDecimals: 1,
		Log:              log,
		Bus:              bus,
	}
}

// Run executes one planning cycle and publishes census events on the bus.
func (p *Planner) Run(weekStart time.Time, staff []model.Staff, clients []model.Client) (*Report, error) {
	if err := p.Table.Validate(); err != nil {
		return nil, fmt.Errorf("hours table: %w", err)
	}

	start := time.Now()
	slots := census.BuildSlots(staff, p.Table)
	match := census.MatchClients(clients, slots, p.Table)
	pressure := analysis.Pressure(slots, p.TopBottlenecks)

	proximity := make(map[string]string, len(staff))
	for _, member := range staff {
		if ranked := geo.RankDistances(staff, member, p.DistanceDecimals); ranked != "" {
			proximity[member.ID] = ranked
		}
	}

	report := &Report{
		RunID:     uuid.NewString(),
		WeekStart: weekStart,
		Slots:     slots,
		Match:     match,
		Pressure:  pressure,
		Proximity: proximity,
		Elapsed:   time.Since(start),
	}

	infeasible := match.Infeasible()
	if p.Log != nil {
		p.Log.Infof("census complete run=%s staff=%d clients=%d slots=%d infeasible=%d elapsed=%s",
			report.RunID, len(staff), len(clients), len(slots), len(infeasible), report.Elapsed)
		for _, id := range infeasible {
			p.Log.Warnf("client %s has no feasible slot under current staffing", id)
		}
	}

	p.publish(report, len(staff), len(clients), len(infeasible))
	return report, nil
}

func (p *Planner) publish(report *Report, staff, clients, infeasible int) {
	if p.Bus == nil {
		return
	}
	samples := make([]metrics.SlotSample, 0, len(report.Slots))
	for _, slot := range report.Slots.Ordered() {
		samples = append(samples, metrics.SlotSample{
			Day:              slot.Day,
			Hour:             slot.Hour,
			Available:        slot.Available,
			PetsAvailable:    slot.PetsAvailable,
			StairsAvailable:  slot.StairsAvailable,
			WindowsAvailable: slot.WindowsAvailable,
			Demand:           len(slot.Clients),
		})
	}
	p.Bus.Publish(metrics.SlotTableEvent{RunID: report.RunID, Samples: samples})
	p.Bus.Publish(metrics.RunCompletedEvent{Run: metrics.RunSummary{
		RunID:             report.RunID,
		Staff:             staff,
		Clients:           clients,
		SlotsBuilt:        len(report.Slots),
		MatchedClients:    clients - infeasible,
		InfeasibleClients: infeasible,
		Elapsed:           report.Elapsed,
		CompletedAt:       time.Now(),
	}})
}
