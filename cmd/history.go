package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/config"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/infra/repository"
)

// initHistory selects the trend history backend. The returned client is nil
// for the in-memory backend.
func initHistory(ctx context.Context, cfg *config.Config) (domain.HistoryRepository, *redis.Client, error) {
	if cfg.History.Backend != config.HistoryBackendRedis {
		slog.Info("trend history initialized", slog.String("backend", string(config.HistoryBackendMemory)))
		return repository.NewMemoryHistory(), nil, nil
	}

	redisClient := redis.NewClient(cfg.Redis.Options())

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		_ = redisClient.Close()
		return nil, nil, fmt.Errorf("instrument redis tracing: %w", err)
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		_ = redisClient.Close()
		return nil, nil, fmt.Errorf("instrument redis metrics: %w", err)
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, nil, fmt.Errorf("%w: %w", repository.ErrRedisConnection, err)
	}

	slog.Info("trend history initialized",
		slog.String("backend", string(config.HistoryBackendRedis)),
		slog.String("addr", cfg.Redis.Addr),
		slog.Duration("ttl", cfg.History.TTL),
	)

	return repository.NewHistoryRepository(redisClient, cfg.History.TTL), redisClient, nil
}
