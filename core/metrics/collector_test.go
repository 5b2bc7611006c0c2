package metrics

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/glintclean/weekplan/core/model"
	"github.com/glintclean/weekplan/internal/eventbus"
)

type recordingSink struct {
	mu      sync.Mutex
	samples []SlotSample
	runs    []RunSummary
}

func (r *recordingSink) RecordSlotCapacity(samples []SlotSample) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = append(r.samples, samples...)
	return nil
}

func (r *recordingSink) RecordRunSummary(run RunSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, run)
	return nil
}

func (r *recordingSink) counts() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.samples), len(r.runs)
}

func TestStartCollector_ForwardsEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := eventbus.New()
	sink := &recordingSink{}
	StartCollector(ctx, bus, sink)

	bus.Publish(SlotTableEvent{RunID: "r1", Samples: []SlotSample{
		{Day: model.Monday, Hour: 0, Available: 2, Demand: 1},
	}})
	bus.Publish(RunCompletedEvent{Run: RunSummary{RunID: "r1", Clients: 3}})

	require.Eventually(t, func() bool {
		samples, runs := sink.counts()
		return samples == 1 && runs == 1
	}, time.Second, 5*time.Millisecond)
}

func TestStartCollector_NilArgsAreIgnored(t *testing.T) {
	// Must not panic.
	StartCollector(context.Background(), nil, NopSink{})
	StartCollector(context.Background(), eventbus.New(), nil)
}
