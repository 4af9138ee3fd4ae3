package domain

import "errors"

var (
	ErrUnknownZone        = errors.New("unknown zone")
	ErrReadingUnavailable = errors.New("reading unavailable")
	ErrNegativeReading    = errors.New("reading count must be non-negative")
	ErrHistoryUnavailable = errors.New("trend history unavailable")
)
