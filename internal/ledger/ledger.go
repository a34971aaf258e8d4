package ledger

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrWalletNotFound occurs when no wallet exists for the requested user.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrNonPositiveAmount indicates a ledger mutation was requested with a
	// zero or negative amount.
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

const (
	// TransactionTypeDeposit marks history entries produced by confirmed deposits.
	TransactionTypeDeposit = "deposit"
	// TransactionStatusCompleted is the only status a history entry is written with.
	TransactionStatusCompleted = "completed"
)

// Wallet holds a user's confirmed balance and the sum of amounts of their
// still-pending deposit requests.
type Wallet struct {
	UserID         string
	Balance        decimal.Decimal
	PendingDeposit decimal.Decimal
}

// Transaction is a single wallet history entry. Entries are append-only and
// immutable once written; insertion order is chronological.
type Transaction struct {
	ID          string
	UserID      string
	Type        string
	Amount      decimal.Decimal
	Date        string
	Status      string
	Description string
}

// Ledger owns wallet counters and the append-only transaction history.
//
// ApplyApproval credits the balance, releases the pending amount and appends
// one history entry; the counter changes are a single atomic increment pair so
// concurrent deposits for the same user both land. ApplyRejection only
// releases the pending amount and appends nothing.
type Ledger interface {
	EnsureWallet(ctx context.Context, userID string) error
	Wallet(ctx context.Context, userID string) (Wallet, error)
	History(ctx context.Context, userID string) ([]Transaction, error)
	AddPending(ctx context.Context, userID string, amount decimal.Decimal) error
	ApplyApproval(ctx context.Context, userID string, txn Transaction) (Wallet, error)
	ApplyRejection(ctx context.Context, userID string, amount decimal.Decimal) (Wallet, error)
}
