package config

import (
	"os"
	"strconv"
	"time"
)

const (
	refreshIntervalEnv      = "REFRESH_INTERVAL_SECONDS"
	autoRefreshEnv          = "AUTO_REFRESH"
	notificationsEnabledEnv = "NOTIFICATIONS_ENABLED"
	freezeEnv               = "FREEZE"
	notifyFeedSizeEnv       = "NOTIFY_FEED_SIZE"
	notifyLogCapacityEnv    = "NOTIFY_LOG_CAPACITY"

	defaultRefreshInterval = 6 * time.Second
	defaultFeedSize        = 6

	MinRefreshInterval = 3 * time.Second
	MaxRefreshInterval = 20 * time.Second
)

type DashboardConfig struct {
	RefreshInterval      time.Duration
	AutoRefresh          bool
	NotificationsEnabled bool
	Freeze               bool
	FeedSize             int
	LogCapacity          int // 0 keeps every entry
}

func LoadDashboardConfig() *DashboardConfig {
	interval := defaultRefreshInterval
	if v := os.Getenv(refreshIntervalEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			interval = ClampRefreshInterval(time.Duration(parsed) * time.Second)
		}
	}

	feedSize := defaultFeedSize
	if v := os.Getenv(notifyFeedSizeEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			feedSize = parsed
		}
	}

	logCapacity := 0
	if v := os.Getenv(notifyLogCapacityEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			logCapacity = parsed
		}
	}

	return &DashboardConfig{
		RefreshInterval:      interval,
		AutoRefresh:          parseBool(os.Getenv(autoRefreshEnv), true),
		NotificationsEnabled: parseBool(os.Getenv(notificationsEnabledEnv), true),
		Freeze:               parseBool(os.Getenv(freezeEnv), false),
		FeedSize:             feedSize,
		LogCapacity:          logCapacity,
	}
}

// ClampRefreshInterval keeps the interval within the range offered to operators.
func ClampRefreshInterval(d time.Duration) time.Duration {
	if d < MinRefreshInterval {
		return MinRefreshInterval
	}
	if d > MaxRefreshInterval {
		return MaxRefreshInterval
	}
	return d
}

func parseBool(raw string, fallback bool) bool {
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
