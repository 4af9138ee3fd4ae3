package reading

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/jaswdr/faker"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

// Source simulates sensor counts with uniform integers in [min, max].
type Source struct {
	mu   sync.Mutex
	fake faker.Faker
	min  int
	max  int
}

var _ domain.ReadingSource = (*Source)(nil)

// NewSource creates a simulated source. A zero seed seeds from the clock.
func NewSource(min, max int, seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Source{
		fake: faker.NewWithSeed(rand.NewSource(seed)),
		min:  min,
		max:  max,
	}
}

func (s *Source) Read(ctx context.Context, zone domain.Zone) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w for %s: %w", domain.ErrReadingUnavailable, zone.Name, err)
	}

	s.mu.Lock()
	count := s.fake.IntBetween(s.min, s.max)
	s.mu.Unlock()

	return count, nil
}
