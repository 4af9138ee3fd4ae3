package config

import "errors"

var (
	ErrRedisAddrMissing   = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB     = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidThresholds  = errors.New("THRESHOLD_MEDIUM must be lower than THRESHOLD_HIGH")
	ErrNegativeThreshold  = errors.New("thresholds must be non-negative")
	ErrInvalidThreshold   = errors.New("THRESHOLD_HIGH and THRESHOLD_MEDIUM must be valid integers")
	ErrInvalidReadingSpan = errors.New("READING_MIN must be non-negative and not greater than READING_MAX")
	ErrInvalidReadingEnv  = errors.New("READING_MIN, READING_MAX and READING_SEED must be valid integers")
	ErrInvalidMapSize     = errors.New("MAP_WIDTH and MAP_HEIGHT must be positive integers")
	ErrInvalidAuthUsers   = errors.New("AUTH_USERS entries must be user:password:role")
	ErrEmptyZoneName      = errors.New("zone name must not be empty")
	ErrDuplicateZone      = errors.New("duplicate zone name")
	ErrZoneOutOfBounds    = errors.New("zone coordinates must be within [0,1]")
	ErrPartialCoordinate  = errors.New("zone must define both x and y or neither")
	ErrNoZones            = errors.New("at least one zone is required")
)
