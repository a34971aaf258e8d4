package notification

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory notification store for tests and development
// mode. The deposit memory store appends into it directly.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Notification
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Notification)}
}

// Add appends a notification. Used by the deposit memory store's finalize
// path and by tests.
func (s *MemoryStore) Add(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[n.ID] = n
}

// ListByUser returns the user's notifications, newest first.
func (s *MemoryStore) ListByUser(_ context.Context, userID string) ([]Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Notification
	for _, n := range s.records {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// MarkRead flips the read marker for one notification.
func (s *MemoryStore) MarkRead(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.records[id]
	if !ok {
		return ErrNotFound
	}
	n.IsRead = true
	s.records[id] = n
	return nil
}

// CountFor reports how many notifications exist for the user. Test helper.
func (s *MemoryStore) CountFor(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.records {
		if n.UserID == userID {
			count++
		}
	}
	return count
}
