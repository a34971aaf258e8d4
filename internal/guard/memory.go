package guard

import (
	"context"
	"sync"
)

type memoryGuard struct {
	mu     sync.Mutex
	locked map[string]struct{}
}

// NewMemory creates an in-process guard for tests and development mode.
func NewMemory() Guard {
	return &memoryGuard{locked: make(map[string]struct{})}
}

func (g *memoryGuard) Acquire(_ context.Context, requestID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, held := g.locked[requestID]; held {
		return ErrLocked
	}
	g.locked[requestID] = struct{}{}
	return nil
}

func (g *memoryGuard) Release(_ context.Context, requestID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.locked, requestID)
}
