package domain

import "context"

//go:generate mockgen -source=history_repository.go -destination=history_repository_mock.go -package=domain

// HistoryRepository stores the last observed count per zone.
//
// Swap atomically replaces the stored count for zone with count and returns the
// value it replaced. found is false when the zone had no prior value.
type HistoryRepository interface {
	Swap(ctx context.Context, zone string, count int) (previous int, found bool, err error)
	Get(ctx context.Context, zone string) (count int, found bool, err error)
	Reset(ctx context.Context) error
}
