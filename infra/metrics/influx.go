package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/glintclean/weekplan/core/logger"
	coremetrics "github.com/glintclean/weekplan/core/metrics"
	infralogger "github.com/glintclean/weekplan/infra/logger"
)

// InfluxSink writes census output to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB
// endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      infralogger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns
// a NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) coremetrics.Sink {
	sink := NewInfluxSink(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordSlotCapacity writes one point per slot.
func (s *InfluxSink) RecordSlotCapacity(samples []coremetrics.SlotSample) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	now := time.Now()
	for _, sample := range samples {
		p := write.NewPointWithMeasurement("slot_capacity").
			AddTag("day", sample.Day.String()).
			AddTag("hour", strconv.Itoa(sample.Hour)).
			AddField("available", sample.Available).
			AddField("pets_available", sample.PetsAvailable).
			AddField("stairs_available", sample.StairsAvailable).
			AddField("windows_available", sample.WindowsAvailable).
			AddField("demand", sample.Demand).
			SetTime(now)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RecordRunSummary writes one point per completed run.
func (s *InfluxSink) RecordRunSummary(run coremetrics.RunSummary) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("census_run").
		AddTag("run_id", run.RunID).
		AddField("staff", run.Staff).
		AddField("clients", run.Clients).
		AddField("slots_built", run.SlotsBuilt).
		AddField("matched_clients", run.MatchedClients).
		AddField("infeasible_clients", run.InfeasibleClients).
		AddField("elapsed_ms", run.Elapsed.Milliseconds()).
		SetTime(run.CompletedAt)
	return s.writeAPI.WritePoint(ctx, p)
}
