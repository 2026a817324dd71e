package coach

import (
	"context"
	"sync"
	"time"
)

// DateStore remembers the synthetic date handed out for each transaction seed,
// so a purchase keeps its date across restarts.
type DateStore interface {
	Lookup(ctx context.Context, seed string) (time.Time, bool, error)
	Save(ctx context.Context, seed string, date time.Time) error
}

// MemoryDateStore is a process-local DateStore.
type MemoryDateStore struct {
	mu    sync.RWMutex
	dates map[string]time.Time
}

// NewMemoryDateStore creates an empty in-memory store.
func NewMemoryDateStore() *MemoryDateStore {
	return &MemoryDateStore{dates: make(map[string]time.Time)}
}

// Lookup implements DateStore.
func (s *MemoryDateStore) Lookup(_ context.Context, seed string) (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	date, ok := s.dates[seed]
	return date, ok, nil
}

// Save implements DateStore.
func (s *MemoryDateStore) Save(_ context.Context, seed string, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dates[seed] = date
	return nil
}

// Len returns the number of stored seeds.
func (s *MemoryDateStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dates)
}

// ISODateLayout is the layout dates are persisted in.
const ISODateLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatISODate renders a date in UTC with millisecond precision.
func FormatISODate(t time.Time) string {
	return t.UTC().Format(ISODateLayout)
}

// ParseISODate parses a persisted date.
func ParseISODate(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}
