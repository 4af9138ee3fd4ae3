package config

import (
	"os"
	"strconv"
)

const (
	readingMinEnv  = "READING_MIN"
	readingMaxEnv  = "READING_MAX"
	readingSeedEnv = "READING_SEED"

	defaultReadingMin = 40
	defaultReadingMax = 350
)

type ReadingConfig struct {
	Min  int
	Max  int
	Seed int64 // 0 seeds from the clock
}

func LoadReadingConfig() (*ReadingConfig, error) {
	cfg := &ReadingConfig{
		Min: defaultReadingMin,
		Max: defaultReadingMax,
	}

	if v := os.Getenv(readingMinEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, ErrInvalidReadingEnv
		}
		cfg.Min = parsed
	}

	if v := os.Getenv(readingMaxEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, ErrInvalidReadingEnv
		}
		cfg.Max = parsed
	}

	if v := os.Getenv(readingSeedEnv); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, ErrInvalidReadingEnv
		}
		cfg.Seed = parsed
	}

	return cfg, nil
}

func (c *ReadingConfig) Validate() error {
	if c.Min < 0 || c.Max < c.Min {
		return ErrInvalidReadingSpan
	}
	return nil
}
