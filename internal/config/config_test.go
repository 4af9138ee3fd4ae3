package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClassifierConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClassifierConfig
		wantErr error
	}{
		{
			name: "defaults are valid",
			cfg:  ClassifierConfig{High: DefaultHighThreshold, Medium: DefaultMediumThreshold},
		},
		{
			name:    "medium equal to high is rejected",
			cfg:     ClassifierConfig{High: 200, Medium: 200},
			wantErr: ErrInvalidThresholds,
		},
		{
			name:    "medium above high is rejected",
			cfg:     ClassifierConfig{High: 100, Medium: 150},
			wantErr: ErrInvalidThresholds,
		},
		{
			name:    "negative threshold is rejected",
			cfg:     ClassifierConfig{High: 100, Medium: -1},
			wantErr: ErrNegativeThreshold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadClassifierConfig_FromEnv(t *testing.T) {
	t.Setenv(thresholdHighEnv, "300")
	t.Setenv(thresholdMediumEnv, "120")

	cfg, err := LoadClassifierConfig()
	if err != nil {
		t.Fatalf("LoadClassifierConfig() error: %v", err)
	}
	if cfg.High != 300 || cfg.Medium != 120 {
		t.Errorf("got high=%d medium=%d, want 300/120", cfg.High, cfg.Medium)
	}
}

func TestLoadClassifierConfig_InvalidValue(t *testing.T) {
	t.Setenv(thresholdHighEnv, "lots")

	if _, err := LoadClassifierConfig(); !errors.Is(err, ErrInvalidThreshold) {
		t.Errorf("LoadClassifierConfig() error = %v, want %v", err, ErrInvalidThreshold)
	}
}

func TestClampRefreshInterval(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want time.Duration
	}{
		{name: "below minimum", in: time.Second, want: MinRefreshInterval},
		{name: "at minimum", in: 3 * time.Second, want: 3 * time.Second},
		{name: "within range", in: 6 * time.Second, want: 6 * time.Second},
		{name: "above maximum", in: time.Minute, want: MaxRefreshInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampRefreshInterval(tt.in); got != tt.want {
				t.Errorf("ClampRefreshInterval(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoadDashboardConfig_Defaults(t *testing.T) {
	cfg := LoadDashboardConfig()

	if cfg.RefreshInterval != 6*time.Second {
		t.Errorf("RefreshInterval = %v, want 6s", cfg.RefreshInterval)
	}
	if !cfg.AutoRefresh || !cfg.NotificationsEnabled || cfg.Freeze {
		t.Errorf("unexpected toggles: %+v", cfg)
	}
	if cfg.FeedSize != 6 {
		t.Errorf("FeedSize = %d, want 6", cfg.FeedSize)
	}
	if cfg.LogCapacity != 0 {
		t.Errorf("LogCapacity = %d, want 0", cfg.LogCapacity)
	}
}

func TestLoadDashboardConfig_FromEnv(t *testing.T) {
	t.Setenv(refreshIntervalEnv, "45")
	t.Setenv(autoRefreshEnv, "false")
	t.Setenv(freezeEnv, "true")
	t.Setenv(notificationsEnabledEnv, "not-a-bool")

	cfg := LoadDashboardConfig()

	if cfg.RefreshInterval != MaxRefreshInterval {
		t.Errorf("RefreshInterval = %v, want %v", cfg.RefreshInterval, MaxRefreshInterval)
	}
	if cfg.AutoRefresh {
		t.Error("AutoRefresh should be false")
	}
	if !cfg.Freeze {
		t.Error("Freeze should be true")
	}
	if !cfg.NotificationsEnabled {
		t.Error("invalid NOTIFICATIONS_ENABLED should fall back to true")
	}
}

func TestParseAuthUsers(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantUsers int
		wantErr   bool
	}{
		{name: "default accounts", raw: defaultAuthUsers, wantUsers: 2},
		{name: "whitespace tolerated", raw: " ops:secret:Admin , ", wantUsers: 1},
		{name: "missing role", raw: "ops:secret", wantErr: true},
		{name: "unknown role", raw: "ops:secret:root", wantErr: true},
		{name: "empty", raw: ",", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseAuthUsers(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthUsers) {
					t.Errorf("ParseAuthUsers() error = %v, want %v", err, ErrInvalidAuthUsers)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAuthUsers() error: %v", err)
			}
			if len(cfg.Accounts) != tt.wantUsers {
				t.Errorf("got %d accounts, want %d", len(cfg.Accounts), tt.wantUsers)
			}
		})
	}
}

func TestParseAuthUsers_Roles(t *testing.T) {
	cfg, err := ParseAuthUsers(defaultAuthUsers)
	if err != nil {
		t.Fatalf("ParseAuthUsers() error: %v", err)
	}

	if got := cfg.Accounts["admin"]; got.Role != RoleAdmin || got.Password != "admin123" {
		t.Errorf("admin account = %+v", got)
	}
	if got := cfg.Accounts["viewer"]; got.Role != RoleViewer || got.Password != "viewer123" {
		t.Errorf("viewer account = %+v", got)
	}
}

func TestParseZones(t *testing.T) {
	doc := []byte(`
zones:
  - name: Library
    x: 0.34
    y: 0.28
  - name: Annex
`)

	zones, err := ParseZones(doc)
	if err != nil {
		t.Fatalf("ParseZones() error: %v", err)
	}
	if len(zones) != 2 {
		t.Fatalf("got %d zones, want 2", len(zones))
	}
	if !zones[0].IsMapped() || zones[0].Position.X != 0.34 || zones[0].Position.Y != 0.28 {
		t.Errorf("Library position = %+v", zones[0].Position)
	}
	if zones[1].IsMapped() {
		t.Errorf("Annex should be unmapped, got %+v", zones[1].Position)
	}
}

func TestParseZones_PartialCoordinate(t *testing.T) {
	doc := []byte(`
zones:
  - name: Library
    x: 0.34
`)

	if _, err := ParseZones(doc); !errors.Is(err, ErrPartialCoordinate) {
		t.Errorf("ParseZones() error = %v, want %v", err, ErrPartialCoordinate)
	}
}

func TestLoadZonesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zones.yaml")
	if err := os.WriteFile(path, []byte("zones:\n  - name: Cafeteria\n    x: 0.36\n    y: 0.62\n"), 0o600); err != nil {
		t.Fatalf("failed to write zones file: %v", err)
	}

	zones, err := LoadZonesFile(path)
	if err != nil {
		t.Fatalf("LoadZonesFile() error: %v", err)
	}
	if len(zones) != 1 || zones[0].Name != "Cafeteria" {
		t.Errorf("unexpected zones: %+v", zones)
	}
}

func TestValidateZones(t *testing.T) {
	if err := ValidateZones(DefaultZones()); err != nil {
		t.Errorf("default zones should be valid: %v", err)
	}

	dup := append(DefaultZones(), DefaultZones()[0])
	if err := ValidateZones(dup); !errors.Is(err, ErrDuplicateZone) {
		t.Errorf("duplicate error = %v, want %v", err, ErrDuplicateZone)
	}

	out := DefaultZones()
	out[0].Position.X = 1.2
	if err := ValidateZones(out); !errors.Is(err, ErrZoneOutOfBounds) {
		t.Errorf("bounds error = %v, want %v", err, ErrZoneOutOfBounds)
	}

	if err := ValidateZones(nil); !errors.Is(err, ErrNoZones) {
		t.Errorf("empty error = %v, want %v", err, ErrNoZones)
	}
}

func TestDefaultZones(t *testing.T) {
	zones := DefaultZones()
	if len(zones) != 10 {
		t.Fatalf("got %d default zones, want 10", len(zones))
	}
	if zones[0].Name != "Main Gate" || zones[9].Name != "Sports Complex" {
		t.Errorf("unexpected order: first=%q last=%q", zones[0].Name, zones[9].Name)
	}
}

func TestConfig_ValidateJoinsErrors(t *testing.T) {
	cfg := &Config{
		Zones:      DefaultZones(),
		Classifier: &ClassifierConfig{High: 100, Medium: 100},
		Reading:    &ReadingConfig{Min: 50, Max: 10},
		Map:        &MapConfig{Width: 800, Height: 600},
		History:    &HistoryConfig{Backend: HistoryBackendMemory},
		Redis:      &RedisConfig{},
	}

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidThresholds) {
		t.Errorf("expected ErrInvalidThresholds in %v", err)
	}
	if !errors.Is(err, ErrInvalidReadingSpan) {
		t.Errorf("expected ErrInvalidReadingSpan in %v", err)
	}
}

func TestConfig_ValidateRedisOnlyWhenSelected(t *testing.T) {
	cfg := &Config{
		Zones:      DefaultZones(),
		Classifier: &ClassifierConfig{High: 260, Medium: 150},
		Reading:    &ReadingConfig{Min: 40, Max: 350},
		Map:        &MapConfig{Width: 800, Height: 600},
		History:    &HistoryConfig{Backend: HistoryBackendMemory},
		Redis:      &RedisConfig{},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("memory backend should not require redis: %v", err)
	}

	cfg.History.Backend = HistoryBackendRedis
	if err := cfg.Validate(); !errors.Is(err, ErrRedisAddrMissing) {
		t.Errorf("Validate() error = %v, want %v", err, ErrRedisAddrMissing)
	}
}
