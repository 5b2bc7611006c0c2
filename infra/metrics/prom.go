package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/glintclean/weekplan/core/metrics"
)

// PromSink records census output in Prometheus metrics.
type PromSink struct {
	capacity   *prometheus.GaugeVec
	demand     *prometheus.GaugeVec
	runs       prometheus.Counter
	infeasible prometheus.Gauge
}

// NewPromSink registers census metrics on the default Prometheus registerer.
// The scrape server is started separately using cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (*PromSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer. A
// nil registerer defaults to the global Prometheus registerer. Collectors
// already registered are reused.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	capacity := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "weekplan_slot_staff_available",
		Help: "Staff available per slot and capability",
	}, []string{"day", "hour", "capability"})
	demand := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "weekplan_slot_candidate_clients",
		Help: "Candidate clients matched per slot",
	}, []string{"day", "hour"})
	runs := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "weekplan_census_runs_total",
		Help: "Total number of completed census runs",
	})
	infeasible := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "weekplan_infeasible_clients",
		Help: "Clients with no feasible slot in the latest run",
	})

	if err := reg.Register(capacity); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			capacity = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(demand); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			demand = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(infeasible); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			infeasible = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{capacity: capacity, demand: demand, runs: runs, infeasible: infeasible}, nil
}

// RecordSlotCapacity sets the per-slot gauges from the latest census.
func (s *PromSink) RecordSlotCapacity(samples []coremetrics.SlotSample) error {
	for _, sample := range samples {
		day := sample.Day.String()
		hour := strconv.Itoa(sample.Hour)
		s.capacity.WithLabelValues(day, hour, "total").Set(float64(sample.Available))
		s.capacity.WithLabelValues(day, hour, "pets").Set(float64(sample.PetsAvailable))
		s.capacity.WithLabelValues(day, hour, "stairs").Set(float64(sample.StairsAvailable))
		s.capacity.WithLabelValues(day, hour, "windows").Set(float64(sample.WindowsAvailable))
		s.demand.WithLabelValues(day, hour).Set(float64(sample.Demand))
	}
	return nil
}

// RecordRunSummary counts the run and tracks the infeasible-client gauge.
func (s *PromSink) RecordRunSummary(run coremetrics.RunSummary) error {
	s.runs.Inc()
	s.infeasible.Set(float64(run.InfeasibleClients))
	return nil
}
