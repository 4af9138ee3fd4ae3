package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

const (
	portEnv      = "PORT"
	zonesFileEnv = "ZONES_FILE"

	defaultPort = "8080"
)

type Config struct {
	Port       string
	ZonesFile  string
	Zones      []domain.Zone
	Classifier *ClassifierConfig
	Dashboard  *DashboardConfig
	Reading    *ReadingConfig
	Map        *MapConfig
	History    *HistoryConfig
	Redis      *RedisConfig
	Auth       *AuthConfig
}

func Load() (*Config, error) {
	port := os.Getenv(portEnv)
	if port == "" {
		port = defaultPort
	}

	classifierConfig, err := LoadClassifierConfig()
	if err != nil {
		return nil, err
	}

	readingConfig, err := LoadReadingConfig()
	if err != nil {
		return nil, err
	}

	mapConfig, err := LoadMapConfig()
	if err != nil {
		return nil, err
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	authConfig, err := LoadAuthConfig()
	if err != nil {
		return nil, err
	}

	zonesFile := os.Getenv(zonesFileEnv)
	zones := DefaultZones()
	if zonesFile != "" {
		zones, err = LoadZonesFile(zonesFile)
		if err != nil {
			return nil, err
		}
	}

	return &Config{
		Port:       port,
		ZonesFile:  zonesFile,
		Zones:      zones,
		Classifier: classifierConfig,
		Dashboard:  LoadDashboardConfig(),
		Reading:    readingConfig,
		Map:        mapConfig,
		History:    LoadHistoryConfig(),
		Redis:      redisConfig,
		Auth:       authConfig,
	}, nil
}

// Validate checks cross-field constraints. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Classifier.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Reading.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Map.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateZones(c.Zones); err != nil {
		errs = append(errs, err)
	}
	if c.History.Backend == HistoryBackendRedis {
		if err := c.Redis.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %w", errors.Join(errs...))
	}

	return nil
}
