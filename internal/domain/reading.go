package domain

import "context"

//go:generate mockgen -source=reading.go -destination=reading_mock.go -package=domain

// Reading is a single people count for a zone within one cycle.
type Reading struct {
	Zone  string
	Count int
}

// ReadingSource produces one count per zone per cycle. Implementations must be
// safe for concurrent use; the dashboard reads zones in parallel.
type ReadingSource interface {
	Read(ctx context.Context, zone Zone) (int, error)
}
