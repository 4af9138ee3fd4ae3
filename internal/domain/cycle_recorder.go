package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=cycle_recorder.go -destination=cycle_recorder_mock.go -package=domain

type ZoneReadingRecord struct {
	CycleID   string
	Zone      string
	Count     int
	Level     Level
	Trend     Trend
	Timestamp time.Time
}

// CycleRecorder persists per-cycle readings to a time-series backend.
type CycleRecorder interface {
	RecordReadings(ctx context.Context, records []ZoneReadingRecord) error
	Flush(ctx context.Context) error
	Close() error
}
