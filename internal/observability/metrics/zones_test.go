package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

func TestZoneGauges_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	gauges, err := NewZoneGauges(reg)
	if err != nil {
		t.Fatalf("NewZoneGauges: %v", err)
	}

	gauges.Observe(&domain.Snapshot{
		Rows: []domain.ZoneRow{
			{Zone: "Library", Count: 300, Level: domain.LevelHigh},
			{Zone: "Cafeteria", Count: 90, Level: domain.LevelLow},
		},
		TotalPeople:  390,
		ZonesInAlert: 1,
	})

	if got := testutil.ToFloat64(gauges.Occupancy.WithLabelValues("Library")); got != 300 {
		t.Fatalf("campus_zone_occupancy{Library} = %v, want 300", got)
	}
	if got := testutil.ToFloat64(gauges.Alert.WithLabelValues("Library", "high")); got != 1 {
		t.Fatalf("campus_zone_level{Library,high} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(gauges.Alert.WithLabelValues("Library", "low")); got != 0 {
		t.Fatalf("campus_zone_level{Library,low} = %v, want 0", got)
	}
	if got := testutil.ToFloat64(gauges.TotalPeople); got != 390 {
		t.Fatalf("campus_people_total = %v, want 390", got)
	}
	if got := testutil.ToFloat64(gauges.ZonesInAlert); got != 1 {
		t.Fatalf("campus_zones_in_alert = %v, want 1", got)
	}
}

func TestZoneGauges_RegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewZoneGauges(reg)
	if err != nil {
		t.Fatalf("NewZoneGauges: %v", err)
	}
	second, err := NewZoneGauges(reg)
	if err != nil {
		t.Fatalf("second NewZoneGauges: %v", err)
	}
	if first.Occupancy != second.Occupancy {
		t.Fatal("expected existing collector to be reused")
	}
}

func TestZoneGauges_Handler(t *testing.T) {
	reg := prometheus.NewRegistry()
	gauges, err := NewZoneGauges(reg)
	if err != nil {
		t.Fatalf("NewZoneGauges: %v", err)
	}
	gauges.Observe(&domain.Snapshot{TotalPeople: 12})

	rec := httptest.NewRecorder()
	gauges.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "campus_people_total 12") {
		t.Fatalf("metrics body missing campus_people_total:\n%s", rec.Body.String())
	}
}
