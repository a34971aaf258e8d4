package settings

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu    sync.RWMutex
	info  PaymentInfo
	saved bool
}

// NewMemoryStore constructs an in-memory settings store for tests and
// development mode.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Get(_ context.Context) (PaymentInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.saved {
		return DefaultPaymentInfo(), nil
	}
	return s.info, nil
}

func (s *memoryStore) Save(_ context.Context, info PaymentInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = info
	s.saved = true
	return nil
}
