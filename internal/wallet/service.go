// Package wallet exposes the vendor-facing read surface over the ledger:
// balance counters and the append-only transaction history.
package wallet

import (
	"context"

	"github.com/bazario/bazario-wallet/internal/ledger"
)

// Service reads wallet state through the ledger.
type Service struct {
	ledger ledger.Ledger
}

// NewService builds a wallet service instance.
func NewService(l ledger.Ledger) *Service {
	return &Service{ledger: l}
}

// Balance returns the user's current counters.
func (s *Service) Balance(ctx context.Context, userID string) (ledger.Wallet, error) {
	return s.ledger.Wallet(ctx, userID)
}

// HistoryPage is one page of wallet history plus the total entry count.
type HistoryPage struct {
	Entries []ledger.Transaction
	Total   int
	Page    int
	Limit   int
}

// History returns a page of the user's history, newest first.
func (s *Service) History(ctx context.Context, userID string, page, limit int) (HistoryPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	entries, err := s.ledger.History(ctx, userID)
	if err != nil {
		return HistoryPage{}, err
	}

	// Ledger order is chronological; the screen shows newest first.
	reversed := make([]ledger.Transaction, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}

	total := len(reversed)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return HistoryPage{Entries: reversed[start:end], Total: total, Page: page, Limit: limit}, nil
}
