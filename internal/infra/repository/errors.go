package repository

import "errors"

var (
	ErrRedisConnection    = errors.New("redis connection error")
	ErrInvalidHistoryData = errors.New("invalid history data")
)
