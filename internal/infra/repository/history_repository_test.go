package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/testutil"
)

func TestHistoryRepository_Swap(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewHistoryRepository(client, time.Minute)

	tests := []struct {
		name         string
		zone         string
		count        int
		setup        func(t *testing.T)
		wantPrevious int
		wantFound    bool
	}{
		{
			name:      "first observation has no previous value",
			zone:      "Library",
			count:     200,
			setup:     func(t *testing.T) {},
			wantFound: false,
		},
		{
			name:         "second observation returns the previous count",
			zone:         "Library",
			count:        300,
			setup:        func(t *testing.T) {},
			wantPrevious: 200,
			wantFound:    true,
		},
		{
			name:  "existing record is read back",
			zone:  "Cafeteria",
			count: 50,
			setup: func(t *testing.T) {
				err := client.Set(ctx, "dashboard:history:Cafeteria", `{"count":75,"observed_at":"2025-03-14T09:00:00Z"}`, 0).Err()
				if err != nil {
					t.Fatalf("failed to set up test data: %v", err)
				}
			},
			wantPrevious: 75,
			wantFound:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			previous, found, err := repo.Swap(ctx, tt.zone, tt.count)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if found != tt.wantFound {
				t.Errorf("expected found %v, got %v", tt.wantFound, found)
			}
			if previous != tt.wantPrevious {
				t.Errorf("expected previous %d, got %d", tt.wantPrevious, previous)
			}
		})
	}
}

func TestHistoryRepository_SwapSetsTTL(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewHistoryRepository(client, time.Minute)

	if _, _, err := repo.Swap(ctx, "Main Gate", 120); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ttl, err := client.TTL(ctx, "dashboard:history:Main Gate").Result()
	if err != nil {
		t.Fatalf("failed to read ttl: %v", err)
	}
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("expected ttl within (0, 1m], got %v", ttl)
	}
}

func TestHistoryRepository_InvalidData(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewHistoryRepository(client, time.Minute)

	if err := client.Set(ctx, "dashboard:history:Auditorium", "not-json", 0).Err(); err != nil {
		t.Fatalf("failed to set up test data: %v", err)
	}

	if _, _, err := repo.Get(ctx, "Auditorium"); !errors.Is(err, ErrInvalidHistoryData) {
		t.Errorf("expected ErrInvalidHistoryData, got %v", err)
	}
}

func TestHistoryRepository_Reset(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewHistoryRepository(client, time.Minute)

	for _, zone := range []string{"Library", "Cafeteria"} {
		if _, _, err := repo.Swap(ctx, zone, 100); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := client.Set(ctx, "unrelated", "keep", 0).Err(); err != nil {
		t.Fatalf("failed to set up test data: %v", err)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}

	if _, found, _ := repo.Get(ctx, "Library"); found {
		t.Error("expected Library history to be cleared")
	}
	if val, _ := client.Get(ctx, "unrelated").Result(); val != "keep" {
		t.Errorf("unrelated key was removed")
	}
}
