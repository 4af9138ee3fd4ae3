package cyclerecorder

import (
	"context"
	"fmt"
	"log/slog"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

const zoneReadingMeasurement = "zone_reading"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
}

// NewRecorder returns an InfluxDB recorder, or a no-op recorder when recording
// is disabled or credentials are missing.
func NewRecorder(ctx context.Context, cfg *Config) domain.CycleRecorder {
	if cfg.Disabled {
		slog.InfoContext(ctx, "cycle result recording disabled")
		return NewNoopRecorder()
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, cycle result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder()
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)

	slog.InfoContext(ctx, "cycle result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket),
		bucket:   cfg.InfluxDBBucket,
	}
}

// RecordReadings writes one point per zone reading in a single request.
func (r *influxDBRecorder) RecordReadings(ctx context.Context, records []domain.ZoneReadingRecord) error {
	if len(records) == 0 {
		return nil
	}

	points := make([]*write.Point, 0, len(records))
	for _, record := range records {
		points = append(points, influxdb2.NewPoint(
			zoneReadingMeasurement,
			map[string]string{
				"zone":  record.Zone,
				"level": record.Level.String(),
				"trend": record.Trend.String(),
			},
			map[string]any{
				"count":    record.Count,
				"cycle_id": record.CycleID,
				"alert":    record.Level.IsAlert(),
			},
			record.Timestamp,
		))
	}

	if err := r.writeAPI.WritePoint(ctx, points...); err != nil {
		return fmt.Errorf("failed to write %d readings to InfluxDB bucket %s: %w", len(points), r.bucket, err)
	}

	return nil
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return r.writeAPI.Flush(ctx)
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
