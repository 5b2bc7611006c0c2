package metrics

import coremetrics "github.com/glintclean/weekplan/core/metrics"

// MultiSink fans census records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSlotCapacity forwards the samples to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordSlotCapacity(samples []coremetrics.SlotSample) error {
	for _, s := range m.Sinks {
		if err := s.RecordSlotCapacity(samples); err != nil {
			return err
		}
	}
	return nil
}

// RecordRunSummary forwards the summary to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordRunSummary(run coremetrics.RunSummary) error {
	for _, s := range m.Sinks {
		if err := s.RecordRunSummary(run); err != nil {
			return err
		}
	}
	return nil
}
