package repository

import (
	"context"
	"sync"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

type memoryHistory struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewMemoryHistory returns an in-process history store. It is lost on restart.
func NewMemoryHistory() domain.HistoryRepository {
	return &memoryHistory{
		counts: make(map[string]int),
	}
}

func (m *memoryHistory) Swap(_ context.Context, zone string, count int) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	previous, found := m.counts[zone]
	m.counts[zone] = count
	return previous, found, nil
}

func (m *memoryHistory) Get(_ context.Context, zone string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count, found := m.counts[zone]
	return count, found, nil
}

func (m *memoryHistory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.counts)
	return nil
}
