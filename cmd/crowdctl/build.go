package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/config"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/infra/repository"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/classifier"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/dashboard"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/notification"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/reading"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/registry"
)

var headlessMap = dashboard.MapSize{Width: 800, Height: 600}

// buildService wires a dashboard with in-memory history from viper settings.
func buildService(v *viper.Viper, source domain.ReadingSource) (*dashboard.Service, error) {
	zones := config.DefaultZones()
	if path := v.GetString("zones-file"); path != "" {
		loaded, err := config.LoadZonesFile(path)
		if err != nil {
			return nil, err
		}
		zones = loaded
	}
	if err := config.ValidateZones(zones); err != nil {
		return nil, err
	}

	thresholds := &config.ClassifierConfig{
		High:   v.GetInt("threshold-high"),
		Medium: v.GetInt("threshold-medium"),
	}
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	cls, err := classifier.NewClassifier(thresholds.High, thresholds.Medium)
	if err != nil {
		return nil, err
	}

	if source == nil {
		readings := &config.ReadingConfig{
			Min:  v.GetInt("reading-min"),
			Max:  v.GetInt("reading-max"),
			Seed: v.GetInt64("seed"),
		}
		if err := readings.Validate(); err != nil {
			return nil, fmt.Errorf("reading range: %w", err)
		}
		source = reading.NewSource(readings.Min, readings.Max, readings.Seed)
	}

	enabled := v.GetBool("notifications")
	state := dashboard.NewState(repository.NewMemoryHistory(), notification.NewLog(0, enabled), dashboard.Settings{
		NotificationsEnabled: enabled,
		RefreshInterval:      config.MinRefreshInterval,
	})

	return dashboard.NewService(registry.New(zones), source, cls, state, headlessMap,
		dashboard.WithFeedSize(v.GetInt("feed-size")),
		dashboard.WithClock(time.Now),
	), nil
}
