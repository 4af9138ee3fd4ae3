package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestNew_JSONIncludesServiceAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Service:     ServiceInfo{Name: "campus-dashboard", Version: "1.2.3"},
		Environment: EnvProd,
		Module:      Module("dashboard"),
		Level:       slog.LevelInfo,
		Format:      FormatJSON,
		Output:      &buf,
	})

	logger.Info("cycle done", slog.Int("rows", 10))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	if record["service"] != "campus-dashboard" || record["module"] != "dashboard" || record["env"] != "prod" {
		t.Errorf("missing service attributes: %v", record)
	}
	if _, ok := record["trace_id"]; ok {
		t.Error("trace_id should be absent without a span")
	}
}

func TestNew_AddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Format: FormatJSON, Output: &buf})

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "traced")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if record["trace_id"] != "4bf92f3577b34da6a3ce929d0e0e4736" || record["span_id"] != "00f067aa0ba902b7" {
		t.Errorf("unexpected trace attributes: %v", record)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Output: &buf})

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level: %s", buf.String())
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if ParseLevel("DEBUG") != slog.LevelDebug || ParseLevel("bogus") != slog.LevelInfo {
		t.Error("unexpected ParseLevel result")
	}
	if ParseFormat("", EnvProd) != FormatJSON || ParseFormat("", EnvDev) != FormatText {
		t.Error("unexpected environment default format")
	}
	if ParseFormat("json", EnvDev) != FormatJSON {
		t.Error("explicit format should win")
	}
}
