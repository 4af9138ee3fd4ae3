package cyclerecorder

import (
	"context"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.CycleRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordReadings(_ context.Context, _ []domain.ZoneReadingRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
