package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	thresholdHighEnv   = "THRESHOLD_HIGH"
	thresholdMediumEnv = "THRESHOLD_MEDIUM"

	DefaultHighThreshold   = 260
	DefaultMediumThreshold = 150
)

type ClassifierConfig struct {
	High   int
	Medium int
}

func LoadClassifierConfig() (*ClassifierConfig, error) {
	high := DefaultHighThreshold
	if v := os.Getenv(thresholdHighEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidThreshold, thresholdHighEnv, v)
		}
		high = parsed
	}

	medium := DefaultMediumThreshold
	if v := os.Getenv(thresholdMediumEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidThreshold, thresholdMediumEnv, v)
		}
		medium = parsed
	}

	return &ClassifierConfig{
		High:   high,
		Medium: medium,
	}, nil
}

// Validate rejects threshold pairs that would make classification order ambiguous.
func (c *ClassifierConfig) Validate() error {
	if c.High < 0 || c.Medium < 0 {
		return ErrNegativeThreshold
	}
	if c.Medium >= c.High {
		return fmt.Errorf("%w (medium=%d, high=%d)", ErrInvalidThresholds, c.Medium, c.High)
	}
	return nil
}
