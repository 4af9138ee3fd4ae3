package notification

import (
	"sync"
	"time"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

// Log is the newest-first alert feed. An entry is added only if no entry
// with an identical message is already present.
type Log struct {
	mu       sync.Mutex
	entries  []domain.NotificationEntry
	messages map[string]struct{}
	capacity int
	enabled  bool
}

// NewLog creates a log. capacity 0 keeps every entry; otherwise the oldest
// entries are dropped once the log grows past capacity.
func NewLog(capacity int, enabled bool) *Log {
	if capacity < 0 {
		capacity = 0
	}

	return &Log{
		messages: make(map[string]struct{}),
		capacity: capacity,
		enabled:  enabled,
	}
}

// Record formats and inserts an entry. It reports false when the log is
// disabled or an identical message already exists.
func (l *Log) Record(zone string, level domain.Level, ts time.Time) (domain.NotificationEntry, bool) {
	entry := domain.NewNotificationEntry(zone, level, ts)

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled {
		return entry, false
	}

	if _, exists := l.messages[entry.Message]; exists {
		return entry, false
	}

	l.entries = append([]domain.NotificationEntry{entry}, l.entries...)
	l.messages[entry.Message] = struct{}{}

	if l.capacity > 0 && len(l.entries) > l.capacity {
		for _, dropped := range l.entries[l.capacity:] {
			delete(l.messages, dropped.Message)
		}
		l.entries = l.entries[:l.capacity]
	}

	return entry, true
}

// Recent returns up to n entries, newest first.
func (l *Log) Recent(n int) []domain.NotificationEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 {
		return []domain.NotificationEntry{}
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}

	out := make([]domain.NotificationEntry, n)
	copy(out, l.entries[:n])
	return out
}

// RecentMessages is Recent projected to the message strings shown in the feed.
func (l *Log) RecentMessages(n int) []string {
	entries := l.Recent(n)
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Message
	}
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Log) SetEnabled(enabled bool) {
	l.mu.Lock()
	l.enabled = enabled
	l.mu.Unlock()
}

func (l *Log) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}
