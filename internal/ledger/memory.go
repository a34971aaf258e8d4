package ledger

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

type inMemoryLedger struct {
	mu      sync.RWMutex
	wallets map[string]Wallet
	history map[string][]Transaction
}

// NewInMemory creates a concurrency-safe in-memory ledger useful for unit
// tests and development mode.
func NewInMemory() Ledger {
	return &inMemoryLedger{
		wallets: make(map[string]Wallet),
		history: make(map[string][]Transaction),
	}
}

func (l *inMemoryLedger) EnsureWallet(_ context.Context, userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.wallets[userID]; !exists {
		l.wallets[userID] = Wallet{UserID: userID, Balance: decimal.Zero, PendingDeposit: decimal.Zero}
	}
	return nil
}

func (l *inMemoryLedger) Wallet(_ context.Context, userID string) (Wallet, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	w, exists := l.wallets[userID]
	if !exists {
		return Wallet{}, ErrWalletNotFound
	}
	return w, nil
}

func (l *inMemoryLedger) History(_ context.Context, userID string) ([]Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	entries := l.history[userID]
	out := make([]Transaction, len(entries))
	copy(out, entries)
	return out, nil
}

func (l *inMemoryLedger) AddPending(_ context.Context, userID string, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.addPendingLocked(userID, amount)
}

func (l *inMemoryLedger) ApplyApproval(_ context.Context, userID string, txn Transaction) (Wallet, error) {
	if txn.Amount.Sign() <= 0 {
		return Wallet{}, ErrNonPositiveAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.applyApprovalLocked(userID, txn)
}

func (l *inMemoryLedger) ApplyRejection(_ context.Context, userID string, amount decimal.Decimal) (Wallet, error) {
	if amount.Sign() <= 0 {
		return Wallet{}, ErrNonPositiveAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.applyRejectionLocked(userID, amount)
}

func (l *inMemoryLedger) addPendingLocked(userID string, amount decimal.Decimal) error {
	w, exists := l.wallets[userID]
	if !exists {
		return ErrWalletNotFound
	}
	w.PendingDeposit = w.PendingDeposit.Add(amount)
	l.wallets[userID] = w
	return nil
}

func (l *inMemoryLedger) applyApprovalLocked(userID string, txn Transaction) (Wallet, error) {
	w, exists := l.wallets[userID]
	if !exists {
		return Wallet{}, ErrWalletNotFound
	}
	w.Balance = w.Balance.Add(txn.Amount)
	w.PendingDeposit = w.PendingDeposit.Sub(txn.Amount)
	l.wallets[userID] = w
	l.history[userID] = append(l.history[userID], txn)
	return w, nil
}

func (l *inMemoryLedger) applyRejectionLocked(userID string, amount decimal.Decimal) (Wallet, error) {
	w, exists := l.wallets[userID]
	if !exists {
		return Wallet{}, ErrWalletNotFound
	}
	w.PendingDeposit = w.PendingDeposit.Sub(amount)
	l.wallets[userID] = w
	return w, nil
}
