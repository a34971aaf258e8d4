package deposit

import (
	"context"
	"sort"
	"sync"

	"github.com/bazario/bazario-wallet/internal/ledger"
	"github.com/bazario/bazario-wallet/internal/notification"
)

// MemoryStore keeps deposit requests in memory, backed by the in-memory
// ledger and notification store. Mutations are validated before anything is
// applied, so a finalization either lands fully or not at all, matching the
// Postgres store's transactional contract.
type MemoryStore struct {
	mu       sync.RWMutex
	requests map[string]DepositRequest
	ledger   ledger.Ledger
	notes    *notification.MemoryStore
	failNext error
}

// NewMemoryStore constructs an in-memory store for tests and development mode.
func NewMemoryStore(l ledger.Ledger, notes *notification.MemoryStore) *MemoryStore {
	return &MemoryStore{
		requests: make(map[string]DepositRequest),
		ledger:   l,
		notes:    notes,
	}
}

// Create inserts the pending request and raises the pending-deposit counter.
func (s *MemoryStore) Create(ctx context.Context, req DepositRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ledger.EnsureWallet(ctx, req.UserID); err != nil {
		return err
	}
	if err := s.ledger.AddPending(ctx, req.UserID, req.Amount); err != nil {
		return err
	}
	s.requests[req.ID] = req
	return nil
}

// Get fetches one request by id.
func (s *MemoryStore) Get(_ context.Context, id string) (DepositRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	req, ok := s.requests[id]
	if !ok {
		return DepositRequest{}, ErrNotFound
	}
	return req, nil
}

// List returns requests newest first, optionally filtered by status.
func (s *MemoryStore) List(_ context.Context, status Status) ([]DepositRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []DepositRequest
	for _, req := range s.requests {
		if status == "" || req.Status == status {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// Delete removes a request, releasing its pending contribution when it was
// still pending.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return ErrNotFound
	}
	if req.Status == StatusPending {
		if _, err := s.ledger.ApplyRejection(ctx, req.UserID, req.Amount); err != nil {
			return err
		}
	}
	delete(s.requests, id)
	return nil
}

// Finalize applies the terminal transition. All checks run before the first
// mutation; an injected failure (FailNextFinalize) triggers before anything
// is applied, mirroring an aborted transaction.
func (s *MemoryStore) Finalize(ctx context.Context, f Finalization) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		return err
	}

	req, ok := s.requests[f.RequestID]
	if !ok {
		return ErrNotFound
	}
	if req.Status != StatusPending {
		return ErrNotPending
	}
	if _, err := s.ledger.Wallet(ctx, f.UserID); err != nil {
		return err
	}
	if !f.Action.valid() {
		return ErrInvalidAction
	}

	switch f.Action {
	case ActionApprove:
		if _, err := s.ledger.ApplyApproval(ctx, f.UserID, *f.Txn); err != nil {
			return err
		}
	case ActionReject:
		if _, err := s.ledger.ApplyRejection(ctx, f.UserID, f.Amount); err != nil {
			return err
		}
	}

	processedAt := f.ProcessedAt
	req.Status = f.Action.TerminalStatus()
	req.ProcessedAt = &processedAt
	s.requests[f.RequestID] = req

	s.notes.Add(f.Note)
	return nil
}
