package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const dashboardTracerName = "github.com/KasumiMercury/campus-crowd-dashboard/internal/service/dashboard"

func DashboardTracer() trace.Tracer {
	return otel.Tracer(dashboardTracerName)
}

func StartCycleSpan(ctx context.Context, cycleID string, zoneCount int) (context.Context, trace.Span) {
	return DashboardTracer().Start(ctx, "dashboard.cycle",
		trace.WithAttributes(
			attribute.String("cycle.id", cycleID),
			attribute.Int("cycle.zone_count", zoneCount),
		),
	)
}

func StartReadingSpan(ctx context.Context, zone string) (context.Context, trace.Span) {
	return DashboardTracer().Start(ctx, "dashboard.reading",
		trace.WithAttributes(
			attribute.String("zone", zone),
		),
	)
}

func StartHistorySpan(ctx context.Context, operation, zone string) (context.Context, trace.Span) {
	return DashboardTracer().Start(ctx, "dashboard.history."+operation,
		trace.WithAttributes(
			attribute.String("db.operation", operation),
			attribute.String("zone", zone),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordCycleResult(span trace.Span, rows, inAlert, notified, warnings int, err error) {
	span.SetAttributes(
		attribute.Int("cycle.rows", rows),
		attribute.Int("cycle.zones_in_alert", inAlert),
		attribute.Int("cycle.notified", notified),
		attribute.Int("cycle.warnings", warnings),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
