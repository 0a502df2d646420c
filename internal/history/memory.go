package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// maxMemoryEntries bounds the in-memory store so a long-lived browser
// session cannot grow without limit.
const maxMemoryEntries = 1000

// MemoryStore is an in-process history store used when SQLite is disabled.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryStore creates an empty in-memory history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append records one executed query.
func (s *MemoryStore) Append(e Entry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.ExecutedAt.IsZero() {
		e.ExecutedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	if len(s.entries) > maxMemoryEntries {
		s.entries = s.entries[len(s.entries)-maxMemoryEntries:]
	}
	return nil
}

// Recent returns the most recent entries, newest first.
func (s *MemoryStore) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries)
	if limit > n {
		limit = n
	}
	out := make([]Entry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.entries[i])
	}
	return out, nil
}
