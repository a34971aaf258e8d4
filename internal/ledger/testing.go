package ledger

import "github.com/shopspring/decimal"

// SeedWallet is a test helper that sets wallet counters directly when using
// the in-memory ledger.
func SeedWallet(l Ledger, userID string, balance, pending decimal.Decimal) {
	if mem, ok := l.(*inMemoryLedger); ok {
		mem.mu.Lock()
		defer mem.mu.Unlock()
		mem.wallets[userID] = Wallet{UserID: userID, Balance: balance, PendingDeposit: pending}
	}
}
