package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/glintclean/weekplan/core/metrics"
	"github.com/glintclean/weekplan/core/model"
)

func TestPromSink_RecordSlotCapacity(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)

	err = sink.RecordSlotCapacity([]coremetrics.SlotSample{
		{Day: model.Monday, Hour: 0, Available: 3, PetsAvailable: 2, StairsAvailable: 1, WindowsAvailable: 0, Demand: 4},
		{Day: model.Friday, Hour: 6, Available: 1, Demand: 0},
	})
	require.NoError(t, err)

	assert.Equal(t, 3.0, testutil.ToFloat64(sink.capacity.WithLabelValues("Monday", "0", "total")))
	assert.Equal(t, 2.0, testutil.ToFloat64(sink.capacity.WithLabelValues("Monday", "0", "pets")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.capacity.WithLabelValues("Monday", "0", "stairs")))
	assert.Equal(t, 0.0, testutil.ToFloat64(sink.capacity.WithLabelValues("Monday", "0", "windows")))
	assert.Equal(t, 4.0, testutil.ToFloat64(sink.demand.WithLabelValues("Monday", "0")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.capacity.WithLabelValues("Friday", "6", "total")))
}

func TestPromSink_RecordRunSummary(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)

	require.NoError(t, sink.RecordRunSummary(coremetrics.RunSummary{RunID: "r1", InfeasibleClients: 2}))
	require.NoError(t, sink.RecordRunSummary(coremetrics.RunSummary{RunID: "r2", InfeasibleClients: 0}))

	assert.Equal(t, 2.0, testutil.ToFloat64(sink.runs))
	assert.Equal(t, 0.0, testutil.ToFloat64(sink.infeasible))
}

func TestNewPromSinkWithRegistry_ReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)
	second, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)

	require.NoError(t, first.RecordRunSummary(coremetrics.RunSummary{}))
	require.NoError(t, second.RecordRunSummary(coremetrics.RunSummary{}))
	assert.Equal(t, 2.0, testutil.ToFloat64(second.runs))
}
