package config

import (
	"os"
	"strconv"
	"time"
)

const (
	historyBackendEnv = "HISTORY_BACKEND"
	historyTTLEnv     = "HISTORY_TTL_MINUTES"

	defaultHistoryTTL = 30 * time.Minute
)

type HistoryBackend string

const (
	HistoryBackendMemory HistoryBackend = "memory"
	HistoryBackendRedis  HistoryBackend = "redis"
)

type HistoryConfig struct {
	Backend HistoryBackend
	TTL     time.Duration // applies to the redis backend only
}

func LoadHistoryConfig() *HistoryConfig {
	backend := HistoryBackend(os.Getenv(historyBackendEnv))
	if backend != HistoryBackendMemory && backend != HistoryBackendRedis {
		backend = HistoryBackendMemory
	}

	ttl := defaultHistoryTTL
	if v := os.Getenv(historyTTLEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			ttl = time.Duration(parsed) * time.Minute
		}
	}

	return &HistoryConfig{
		Backend: backend,
		TTL:     ttl,
	}
}
