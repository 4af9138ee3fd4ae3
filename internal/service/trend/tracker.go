package trend

import (
	"context"
	"fmt"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

// Observation is the trend result for one zone in one cycle.
// FirstObservation is set when the zone had no previous count; Trend is
// Stable in that case.
type Observation struct {
	Trend            domain.Trend
	Previous         int
	FirstObservation bool
}

// Tracker compares each new count with the one recorded in the previous cycle.
// Observe must be called at most once per zone per cycle.
type Tracker struct {
	history domain.HistoryRepository
}

func NewTracker(history domain.HistoryRepository) *Tracker {
	return &Tracker{history: history}
}

func (t *Tracker) Observe(ctx context.Context, zone string, count int) (Observation, error) {
	if count < 0 {
		return Observation{Trend: domain.TrendStable}, fmt.Errorf("%w: %s=%d", domain.ErrNegativeReading, zone, count)
	}

	previous, found, err := t.history.Swap(ctx, zone, count)
	if err != nil {
		return Observation{Trend: domain.TrendStable}, fmt.Errorf("%w: %w", domain.ErrHistoryUnavailable, err)
	}

	if !found {
		return Observation{Trend: domain.TrendStable, FirstObservation: true}, nil
	}

	return Observation{
		Trend:    Compare(previous, count),
		Previous: previous,
	}, nil
}

func (t *Tracker) Reset(ctx context.Context) error {
	return t.history.Reset(ctx)
}

func Compare(previous, current int) domain.Trend {
	switch {
	case current > previous:
		return domain.TrendIncreasing
	case current < previous:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}
