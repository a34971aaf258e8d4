package deposit

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bazario/bazario-wallet/internal/ledger"
	"github.com/bazario/bazario-wallet/internal/notification"
)

var (
	// ErrNotFound occurs when the referenced deposit request does not exist.
	ErrNotFound = errors.New("deposit request not found")

	// ErrNotPending indicates the request already reached a terminal status.
	// A second reconciliation attempt on the same request fails with this
	// error and commits nothing.
	ErrNotPending = errors.New("deposit request is not pending")

	// ErrInvalidAmount indicates a malformed (zero or negative) amount.
	ErrInvalidAmount = errors.New("deposit amount must be positive")
)

// Finalization carries everything a terminal transition commits: the
// conditional status flip, the wallet mutation and the notification. The
// amount is the value read at dispatch time.
type Finalization struct {
	RequestID   string
	UserID      string
	Action      Action
	Amount      decimal.Decimal
	ProcessedAt time.Time
	Txn         *ledger.Transaction
	Note        notification.Notification
}

// Store persists deposit requests.
//
// Create inserts the pending request and raises the wallet's pending-deposit
// counter as one unit. Finalize applies the whole terminal transition as one
// atomic commit: the status write is conditional on the request still being
// pending, which gives server-enforced single-writer semantics regardless of
// which session issues it, and the wallet and notification mutations commit
// with it or not at all.
type Store interface {
	Create(ctx context.Context, req DepositRequest) error
	Get(ctx context.Context, id string) (DepositRequest, error)
	List(ctx context.Context, status Status) ([]DepositRequest, error)
	Delete(ctx context.Context, id string) error
	Finalize(ctx context.Context, f Finalization) error
}
