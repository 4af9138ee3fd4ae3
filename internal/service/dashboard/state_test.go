package dashboard

import (
	"testing"
	"time"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/config"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/infra/repository"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/notification"
)

func TestState_UpdateSettings(t *testing.T) {
	log := notification.NewLog(0, true)
	state := NewState(repository.NewMemoryHistory(), log, liveSettings())

	disabled := false
	interval := 45 * time.Second
	got := state.UpdateSettings(SettingsUpdate{
		NotificationsEnabled: &disabled,
		RefreshInterval:      &interval,
	})

	if got.NotificationsEnabled || log.Enabled() {
		t.Error("notifications should be disabled on the log as well")
	}
	if got.RefreshInterval != config.MaxRefreshInterval {
		t.Errorf("RefreshInterval = %v, want clamped %v", got.RefreshInterval, config.MaxRefreshInterval)
	}
	if !got.AutoRefresh {
		t.Error("untouched fields must keep their values")
	}

	select {
	case <-state.Changed():
	default:
		t.Error("expected a change signal")
	}
}

func TestState_NewStateClampsInterval(t *testing.T) {
	settings := liveSettings()
	settings.RefreshInterval = time.Second

	state := NewState(repository.NewMemoryHistory(), notification.NewLog(0, true), settings)

	if got := state.Settings().RefreshInterval; got != config.MinRefreshInterval {
		t.Errorf("RefreshInterval = %v, want %v", got, config.MinRefreshInterval)
	}
	if got := state.Settings().RefreshIntervalSeconds(); got != 3 {
		t.Errorf("RefreshIntervalSeconds() = %d, want 3", got)
	}
}

func TestState_ChangeSignalDoesNotBlock(t *testing.T) {
	state := NewState(repository.NewMemoryHistory(), notification.NewLog(0, true), liveSettings())

	on := true
	for i := 0; i < 3; i++ {
		state.UpdateSettings(SettingsUpdate{AutoRefresh: &on})
	}
}
