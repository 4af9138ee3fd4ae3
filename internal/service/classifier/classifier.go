package classifier

import (
	"errors"
	"fmt"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

var ErrInvalidThresholds = errors.New("medium threshold must be lower than high threshold")

// Classifier maps a people count to a traffic level.
// A count is High only when strictly above the high threshold, so a count
// exactly at the high threshold is Medium.
type Classifier struct {
	high   int
	medium int
}

func NewClassifier(high, medium int) (*Classifier, error) {
	if medium < 0 || medium >= high {
		return nil, fmt.Errorf("%w: medium=%d high=%d", ErrInvalidThresholds, medium, high)
	}

	return &Classifier{
		high:   high,
		medium: medium,
	}, nil
}

func (c *Classifier) Classify(count int) domain.Level {
	if count > c.high {
		return domain.LevelHigh
	}
	if count > c.medium {
		return domain.LevelMedium
	}
	return domain.LevelLow
}

func (c *Classifier) Thresholds() (high, medium int) {
	return c.high, c.medium
}
