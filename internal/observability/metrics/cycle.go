package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	dashboardMeterName = "dashboard.cycle"
)

type CycleMetrics struct {
	cycles          metric.Int64Counter
	cycleDuration   metric.Float64Histogram
	readings        metric.Int64Counter
	readingFailures metric.Int64Counter
	notifications   metric.Int64Counter
	historyFailures metric.Int64Counter
}

func NewCycleMetrics() (*CycleMetrics, error) {
	meter := otel.Meter(dashboardMeterName)

	cycles, err := meter.Int64Counter(
		"dashboard_cycles_total",
		metric.WithDescription("Total number of dashboard refresh cycles"),
		metric.WithUnit("{cycle}"),
	)
	if err != nil {
		return nil, err
	}

	cycleDuration, err := meter.Float64Histogram(
		"dashboard_cycle_duration_seconds",
		metric.WithDescription("Time spent producing one dashboard snapshot"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1,
		),
	)
	if err != nil {
		return nil, err
	}

	readings, err := meter.Int64Counter(
		"dashboard_readings_total",
		metric.WithDescription("Zone readings classified, by traffic level"),
		metric.WithUnit("{reading}"),
	)
	if err != nil {
		return nil, err
	}

	readingFailures, err := meter.Int64Counter(
		"dashboard_reading_failures_total",
		metric.WithDescription("Zone readings that could not be obtained"),
		metric.WithUnit("{reading}"),
	)
	if err != nil {
		return nil, err
	}

	notifications, err := meter.Int64Counter(
		"dashboard_notifications_total",
		metric.WithDescription("Notifications added to the alert feed"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	historyFailures, err := meter.Int64Counter(
		"dashboard_history_failures_total",
		metric.WithDescription("Trend history swaps that failed"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	return &CycleMetrics{
		cycles:          cycles,
		cycleDuration:   cycleDuration,
		readings:        readings,
		readingFailures: readingFailures,
		notifications:   notifications,
		historyFailures: historyFailures,
	}, nil
}

func (m *CycleMetrics) RecordCycle(ctx context.Context, status string, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("status", status))
	m.cycles.Add(ctx, 1, attrs)
	m.cycleDuration.Record(ctx, duration.Seconds(), attrs)
}

func (m *CycleMetrics) RecordReading(ctx context.Context, level string) {
	m.readings.Add(ctx, 1, metric.WithAttributes(
		attribute.String("level", level),
	))
}

func (m *CycleMetrics) RecordReadingFailure(ctx context.Context, zone string) {
	m.readingFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("zone", zone),
	))
}

func (m *CycleMetrics) RecordNotification(ctx context.Context, level string) {
	m.notifications.Add(ctx, 1, metric.WithAttributes(
		attribute.String("level", level),
	))
}

func (m *CycleMetrics) RecordHistoryFailure(ctx context.Context) {
	m.historyFailures.Add(ctx, 1)
}
