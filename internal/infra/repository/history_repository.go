package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

const (
	historyKeyPrefix = "dashboard:history:"

	DefaultHistoryTTL = 30 * time.Minute
)

type historyRecord struct {
	Count      int       `json:"count"`
	ObservedAt time.Time `json:"observed_at"`
}

type historyRepository struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

func NewHistoryRepository(client *redis.Client, ttl time.Duration) domain.HistoryRepository {
	if ttl <= 0 {
		ttl = DefaultHistoryTTL
	}

	return &historyRepository{
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Swap replaces the stored record with GETSET inside a transaction so the
// read of the previous value and the write of the new one cannot interleave
// with another swap on the same zone.
func (r *historyRepository) Swap(ctx context.Context, zone string, count int) (int, bool, error) {
	key := historyKeyPrefix + zone

	data, err := json.Marshal(historyRecord{Count: count, ObservedAt: r.now()})
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrInvalidHistoryData, err)
	}

	pipe := r.client.TxPipeline()
	previous := pipe.GetSet(ctx, key, data)
	pipe.Expire(ctx, key, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return 0, false, fmt.Errorf("%w: %w", ErrRedisConnection, err)
	}

	raw, err := previous.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("%w: %w", ErrRedisConnection, err)
	}

	record, err := decodeHistory(raw)
	if err != nil {
		return 0, false, err
	}

	return record.Count, true, nil
}

func (r *historyRepository) Get(ctx context.Context, zone string) (int, bool, error) {
	raw, err := r.client.Get(ctx, historyKeyPrefix+zone).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("%w: %w", ErrRedisConnection, err)
	}

	record, err := decodeHistory(raw)
	if err != nil {
		return 0, false, err
	}

	return record.Count, true, nil
}

func (r *historyRepository) Reset(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, historyKeyPrefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrRedisConnection, err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrRedisConnection, err)
	}

	return nil
}

func decodeHistory(raw []byte) (historyRecord, error) {
	var record historyRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return historyRecord{}, fmt.Errorf("%w: %w", ErrInvalidHistoryData, err)
	}
	return record, nil
}
