// Package app wires configuration, sinks and the planner into a runnable
// service.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/glintclean/weekplan/config"
	coremetrics "github.com/glintclean/weekplan/core/metrics"
	"github.com/glintclean/weekplan/core/planner"
	"github.com/glintclean/weekplan/infra/logger"
	"github.com/glintclean/weekplan/infra/metrics"
	"github.com/glintclean/weekplan/internal/eventbus"
	"github.com/glintclean/weekplan/scenario"
)

// Service orchestrates one planning cycle per invocation.
type Service struct {
	Planner     *planner.Planner
	bus         eventbus.EventBus
	sink        coremetrics.Sink
	log         logger.Logger
	table       tablePrinter
	promEnabled bool
	promPort    string
}

type tablePrinter struct {
	dayStart int
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	applyLogLevel(cfg.Logging.Level)
	logg := logger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	bus := eventbus.New()
	table := cfg.Hours.Table()
	p := planner.New(table, logger.New("planner"), bus)
	p.TopBottlenecks = cfg.Planner.TopBottlenecks
	p.DistanceDecimals = cfg.Planner.DistanceDecimals

	return &Service{
		Planner:     p,
		bus:         bus,
		sink:        sink,
		log:         logg,
		table:       tablePrinter{dayStart: table.DayStart},
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}, nil
}

// Run executes one census over the scenario at path, or the built-in demo
// scenario when demo is set. With Prometheus enabled it then serves /metrics
// until the context is canceled so the run stays scrapeable.
func (s *Service) Run(ctx context.Context, path string, demo bool) error {
	coremetrics.StartCollector(ctx, s.bus, s.sink)

	sc, err := s.loadScenario(path, demo)
	if err != nil {
		return err
	}
	staff, clients, err := sc.Rosters()
	if err != nil {
		return err
	}
	week, err := sc.Week()
	if err != nil {
		return err
	}

	s.log.Infof("scenario %q: %d staff, %d clients, week of %s",
		sc.Name, len(staff), len(clients), week.Format("2006-01-02"))
	report, err := s.Planner.Run(week, staff, clients)
	if err != nil {
		return err
	}
	s.logReport(report)

	if s.promEnabled {
		s.log.Infof("serving /metrics on :%s until interrupted", s.promPort)
		return metrics.StartPromServer(ctx, s.promPort)
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	return nil
}

func (s *Service) loadScenario(path string, demo bool) (*scenario.Scenario, error) {
	if demo || path == "" {
		return scenario.Demo(), nil
	}
	return scenario.Load(path)
}

func (s *Service) logReport(report *planner.Report) {
	for _, slot := range report.Slots.Ordered() {
		s.log.Infof("%s %d:00 available=%d pets=%d stairs=%d windows=%d clients=%d",
			slot.Day, s.table.dayStart+slot.Hour,
			slot.Available, slot.PetsAvailable, slot.StairsAvailable,
			slot.WindowsAvailable, len(slot.Clients))
	}
	for _, job := range report.Match.Jobs {
		s.log.Infof("client %s (%s): %d candidate slots",
			job.Name, job.ID, len(report.Match.ClientSlots[job.ID]))
	}
	for _, b := range report.Pressure.Bottlenecks {
		s.log.Infof("bottleneck %s %d:00 demand=%d supply=%d ratio=%.2f",
			b.Day, s.table.dayStart+b.Hour, b.Demand, b.Supply, b.Ratio)
	}
	for id, ranked := range report.Proximity {
		s.log.Debugw("staff proximity", map[string]any{"staff": id, "ranked": ranked})
	}
}

func applyLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
