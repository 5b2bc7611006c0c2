// Package metrics defines the observability contract for census runs. Sinks
// live in infra/metrics; this package only carries the record types, the
// interface and the event-bus collector.
package metrics

import (
	"time"

	"github.com/glintclean/weekplan/core/model"
)

// SlotSample is a per-slot capacity reading taken after a census run.
type SlotSample struct {
	Day              model.Weekday
	Hour             int
	Available        int
	PetsAvailable    int
	StairsAvailable  int
	WindowsAvailable int
	Demand           int
}

// RunSummary describes one completed planning run.
type RunSummary struct {
	RunID             string
	Staff             int
	Clients           int
	SlotsBuilt        int
	MatchedClients    int
	InfeasibleClients int
	Elapsed           time.Duration
	CompletedAt       time.Time
}

// Sink records census output for observability purposes.
type Sink interface {
	RecordSlotCapacity(samples []SlotSample) error
	RecordRunSummary(run RunSummary) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordSlotCapacity([]SlotSample) error { return nil }
func (NopSink) RecordRunSummary(RunSummary) error     { return nil }

// SlotTableEvent is published on the event bus after the capacity pass.
type SlotTableEvent struct {
	RunID   string
	Samples []SlotSample
}

// RunCompletedEvent is published on the event bus when a planning run ends.
type RunCompletedEvent struct {
	Run RunSummary
}

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusPort == "" {
		c.PrometheusPort = "9091"
	}
}
