package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

// ZoneGauges exposes the latest per-zone occupancy for Prometheus scraping.
type ZoneGauges struct {
	gatherer prometheus.Gatherer

	Occupancy    *prometheus.GaugeVec
	Alert        *prometheus.GaugeVec
	TotalPeople  prometheus.Gauge
	ZonesInAlert prometheus.Gauge
}

// NewZoneGauges registers the gauges against reg, defaulting to the global
// registry when nil.
func NewZoneGauges(reg prometheus.Registerer) (*ZoneGauges, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	occupancy, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "campus_zone_occupancy",
		Help: "People counted in a zone during the latest cycle.",
	}, []string{"zone"}), "campus_zone_occupancy")
	if err != nil {
		return nil, err
	}

	alert, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "campus_zone_level",
		Help: "1 for the zone's current traffic level, 0 otherwise.",
	}, []string{"zone", "level"}), "campus_zone_level")
	if err != nil {
		return nil, err
	}

	total, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "campus_people_total",
		Help: "Sum of people counted across zones in the latest cycle.",
	}), "campus_people_total")
	if err != nil {
		return nil, err
	}

	inAlert, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "campus_zones_in_alert",
		Help: "Zones at Medium or High traffic in the latest cycle.",
	}), "campus_zones_in_alert")
	if err != nil {
		return nil, err
	}

	return &ZoneGauges{
		gatherer:     gatherer,
		Occupancy:    occupancy,
		Alert:        alert,
		TotalPeople:  total,
		ZonesInAlert: inAlert,
	}, nil
}

// Observe replaces the gauges with the values of a snapshot.
func (g *ZoneGauges) Observe(snapshot *domain.Snapshot) {
	if g == nil || snapshot == nil {
		return
	}

	g.Occupancy.Reset()
	g.Alert.Reset()

	levels := []domain.Level{domain.LevelLow, domain.LevelMedium, domain.LevelHigh}
	for _, row := range snapshot.Rows {
		g.Occupancy.WithLabelValues(row.Zone).Set(float64(row.Count))
		for _, level := range levels {
			value := 0.0
			if row.Level == level {
				value = 1
			}
			g.Alert.WithLabelValues(row.Zone, level.String()).Set(value)
		}
	}

	g.TotalPeople.Set(float64(snapshot.TotalPeople))
	g.ZonesInAlert.Set(float64(snapshot.ZonesInAlert))
}

// Handler exposes a ready-to-use /metrics handler.
func (g *ZoneGauges) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if g != nil && g.gatherer != nil {
		gatherer = g.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
