package cyclerecorder

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

func TestNewRecorder_FallsBackToNoop(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "disabled", cfg: &Config{Disabled: true, InfluxDBToken: "t", InfluxDBOrg: "o"}},
		{name: "missing token", cfg: &Config{InfluxDBOrg: "o"}},
		{name: "missing org", cfg: &Config{InfluxDBToken: "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := NewRecorder(context.Background(), tt.cfg)
			if _, ok := recorder.(*noopRecorder); !ok {
				t.Errorf("expected noop recorder, got %T", recorder)
			}
		})
	}
}

func TestInfluxDBRecorder_RecordReadings(t *testing.T) {
	var (
		mu   sync.Mutex
		body string
		path string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		mu.Lock()
		body = string(data)
		path = r.URL.Path
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	recorder := NewRecorder(context.Background(), &Config{
		InfluxDBURL:    server.URL,
		InfluxDBToken:  "token",
		InfluxDBOrg:    "campus",
		InfluxDBBucket: "crowd",
	})
	defer recorder.Close()

	ts := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	err := recorder.RecordReadings(context.Background(), []domain.ZoneReadingRecord{
		{CycleID: "c1", Zone: "Library", Count: 300, Level: domain.LevelHigh, Trend: domain.TrendIncreasing, Timestamp: ts},
		{CycleID: "c1", Zone: "Cafeteria", Count: 90, Level: domain.LevelLow, Trend: domain.TrendStable, Timestamp: ts},
	})
	if err != nil {
		t.Fatalf("RecordReadings() error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()

	if path != "/api/v2/write" {
		t.Errorf("path = %q, want /api/v2/write", path)
	}
	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), body)
	}
	if !strings.HasPrefix(lines[0], "zone_reading,level=high,trend=increasing,zone=Library ") {
		t.Errorf("unexpected line protocol: %s", lines[0])
	}
	if !strings.Contains(lines[0], "count=300i") {
		t.Errorf("count field missing: %s", lines[0])
	}
}

func TestInfluxDBRecorder_WriteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	recorder := NewRecorder(context.Background(), &Config{
		InfluxDBURL:    server.URL,
		InfluxDBToken:  "token",
		InfluxDBOrg:    "campus",
		InfluxDBBucket: "crowd",
	})
	defer recorder.Close()

	err := recorder.RecordReadings(context.Background(), []domain.ZoneReadingRecord{
		{Zone: "Library", Count: 1, Level: domain.LevelLow, Trend: domain.TrendStable, Timestamp: time.Now()},
	})
	if err == nil {
		t.Fatal("expected error from failing server")
	}
}

func TestNoopRecorder(t *testing.T) {
	recorder := NewNoopRecorder()

	if err := recorder.RecordReadings(context.Background(), nil); err != nil {
		t.Errorf("RecordReadings() error: %v", err)
	}
	if err := recorder.Flush(context.Background()); err != nil {
		t.Errorf("Flush() error: %v", err)
	}
	if err := recorder.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
