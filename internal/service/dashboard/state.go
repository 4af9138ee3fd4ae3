package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/config"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/notification"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/trend"
)

// Settings are the operator toggles that can change while the service runs.
type Settings struct {
	NotificationsEnabled bool          `json:"notifications_enabled"`
	Freeze               bool          `json:"freeze"`
	AutoRefresh          bool          `json:"auto_refresh"`
	RefreshInterval      time.Duration `json:"-"`
}

func (s Settings) RefreshIntervalSeconds() int {
	return int(s.RefreshInterval / time.Second)
}

// SettingsUpdate carries a partial change; nil fields are left as they are.
type SettingsUpdate struct {
	NotificationsEnabled *bool
	Freeze               *bool
	AutoRefresh          *bool
	RefreshInterval      *time.Duration
}

// State owns everything that outlives a single cycle: trend history, the
// notification feed, the latest snapshot and the operator settings.
type State struct {
	tracker       *trend.Tracker
	notifications *notification.Log

	mu       sync.RWMutex
	settings Settings
	latest   *domain.Snapshot
	pinned   *domain.Snapshot

	changed chan struct{}
}

func NewState(history domain.HistoryRepository, notifications *notification.Log, settings Settings) *State {
	settings.RefreshInterval = config.ClampRefreshInterval(settings.RefreshInterval)
	notifications.SetEnabled(settings.NotificationsEnabled)

	return &State{
		tracker:       trend.NewTracker(history),
		notifications: notifications,
		settings:      settings,
		changed:       make(chan struct{}, 1),
	}
}

func (s *State) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings applies a partial update and returns the resulting settings.
// Turning freeze on pins the latest snapshot; turning it off releases it.
func (s *State) UpdateSettings(update SettingsUpdate) Settings {
	s.mu.Lock()

	if update.NotificationsEnabled != nil {
		s.settings.NotificationsEnabled = *update.NotificationsEnabled
		s.notifications.SetEnabled(*update.NotificationsEnabled)
	}
	if update.AutoRefresh != nil {
		s.settings.AutoRefresh = *update.AutoRefresh
	}
	if update.RefreshInterval != nil {
		s.settings.RefreshInterval = config.ClampRefreshInterval(*update.RefreshInterval)
	}
	if update.Freeze != nil && *update.Freeze != s.settings.Freeze {
		s.settings.Freeze = *update.Freeze
		if s.settings.Freeze {
			s.pinned = frozenCopy(s.latest)
		} else {
			s.pinned = nil
		}
	}

	settings := s.settings
	s.mu.Unlock()

	select {
	case s.changed <- struct{}{}:
	default:
	}

	return settings
}

// Changed is signalled after every settings update.
func (s *State) Changed() <-chan struct{} {
	return s.changed
}

func (s *State) Latest() *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pinned != nil {
		return s.pinned
	}
	return s.latest
}

func (s *State) Notifications() *notification.Log {
	return s.notifications
}

func (s *State) Tracker() *trend.Tracker {
	return s.tracker
}

// ResetHistory drops every stored previous count.
func (s *State) ResetHistory(ctx context.Context) error {
	return s.tracker.Reset(ctx)
}

func (s *State) frozen() (*domain.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pinned, s.settings.Freeze
}

// publish stores a freshly computed snapshot. While frozen the first snapshot
// produced becomes the pinned one.
func (s *State) publish(snapshot *domain.Snapshot) *domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = snapshot
	if s.settings.Freeze {
		if s.pinned == nil {
			s.pinned = frozenCopy(snapshot)
		}
		return s.pinned
	}
	return snapshot
}

func frozenCopy(snapshot *domain.Snapshot) *domain.Snapshot {
	if snapshot == nil {
		return nil
	}
	copied := *snapshot
	copied.Status = domain.StatusFrozen
	return &copied
}
