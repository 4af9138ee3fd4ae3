package refresh

import (
	"context"
	"log/slog"
	"time"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/dashboard"
)

// Cycler runs one dashboard cycle.
type Cycler interface {
	RunCycle(ctx context.Context) (*domain.Snapshot, error)
}

// SettingsSource exposes the live refresh settings and a change signal.
type SettingsSource interface {
	Settings() dashboard.Settings
	Changed() <-chan struct{}
}

// Runner triggers dashboard cycles on the configured interval. Cycles are
// skipped while auto refresh is off or the dashboard is frozen.
type Runner struct {
	cycler   Cycler
	settings SettingsSource
}

func NewRunner(cycler Cycler, settings SettingsSource) *Runner {
	return &Runner{
		cycler:   cycler,
		settings: settings,
	}
}

// Run blocks until ctx is cancelled. A settings change restarts the pending
// wait with the new interval.
func (r *Runner) Run(ctx context.Context) error {
	slog.InfoContext(ctx, "refresh loop started",
		slog.Duration("interval", r.settings.Settings().RefreshInterval),
	)

	timer := time.NewTimer(r.settings.Settings().RefreshInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "refresh loop stopped")
			return nil

		case <-r.settings.Changed():
			settings := r.settings.Settings()
			slog.DebugContext(ctx, "refresh settings changed",
				slog.Bool("auto_refresh", settings.AutoRefresh),
				slog.Bool("freeze", settings.Freeze),
				slog.Duration("interval", settings.RefreshInterval),
			)
			resetTimer(timer, settings.RefreshInterval)

		case <-timer.C:
			settings := r.settings.Settings()
			if settings.AutoRefresh && !settings.Freeze {
				if _, err := r.cycler.RunCycle(ctx); err != nil && ctx.Err() == nil {
					slog.ErrorContext(ctx, "scheduled dashboard cycle failed",
						slog.String("error", err.Error()),
					)
				}
			}
			timer.Reset(r.settings.Settings().RefreshInterval)
		}
	}
}

func resetTimer(timer *time.Timer, d time.Duration) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(d)
}
