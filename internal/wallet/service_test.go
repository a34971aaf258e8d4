package wallet

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bazario/bazario-wallet/internal/ledger"
)

func seedHistory(t *testing.T, l ledger.Ledger, userID string, n int) {
	t.Helper()
	ctx := context.Background()
	if err := l.EnsureWallet(ctx, userID); err != nil {
		t.Fatalf("ensure wallet: %v", err)
	}
	ledger.SeedWallet(l, userID, decimal.Zero, decimal.NewFromInt(int64(n)*100))
	for i := 0; i < n; i++ {
		txn := ledger.Transaction{
			ID:     fmt.Sprintf("tx-%02d", i),
			UserID: userID,
			Type:   ledger.TransactionTypeDeposit,
			Amount: decimal.NewFromInt(100),
			Status: ledger.TransactionStatusCompleted,
		}
		if _, err := l.ApplyApproval(ctx, userID, txn); err != nil {
			t.Fatalf("seed approval %d: %v", i, err)
		}
	}
}

func TestServiceBalance(t *testing.T) {
	l := ledger.NewInMemory()
	svc := NewService(l)
	ctx := context.Background()

	l.EnsureWallet(ctx, "vendor-1")
	ledger.SeedWallet(l, "vendor-1", decimal.NewFromInt(900), decimal.NewFromInt(50))

	w, err := svc.Balance(ctx, "vendor-1")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !w.Balance.Equal(decimal.NewFromInt(900)) || !w.PendingDeposit.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected counters: %s / %s", w.Balance, w.PendingDeposit)
	}
}

func TestServiceHistoryPagination(t *testing.T) {
	l := ledger.NewInMemory()
	svc := NewService(l)
	ctx := context.Background()

	seedHistory(t, l, "vendor-1", 25)

	first, err := svc.History(ctx, "vendor-1", 1, 10)
	if err != nil {
		t.Fatalf("history page 1: %v", err)
	}
	if first.Total != 25 {
		t.Fatalf("expected total 25, got %d", first.Total)
	}
	if len(first.Entries) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(first.Entries))
	}
	if first.Entries[0].ID != "tx-24" {
		t.Fatalf("expected newest first, got %s", first.Entries[0].ID)
	}

	last, err := svc.History(ctx, "vendor-1", 3, 10)
	if err != nil {
		t.Fatalf("history page 3: %v", err)
	}
	if len(last.Entries) != 5 {
		t.Fatalf("expected trailing page of 5, got %d", len(last.Entries))
	}

	beyond, err := svc.History(ctx, "vendor-1", 9, 10)
	if err != nil {
		t.Fatalf("history beyond range: %v", err)
	}
	if len(beyond.Entries) != 0 {
		t.Fatalf("expected empty page, got %d", len(beyond.Entries))
	}

	// Page and limit are clamped, not rejected.
	clamped, err := svc.History(ctx, "vendor-1", 0, 0)
	if err != nil {
		t.Fatalf("history clamped: %v", err)
	}
	if clamped.Page != 1 || clamped.Limit != 10 {
		t.Fatalf("expected defaults, got page=%d limit=%d", clamped.Page, clamped.Limit)
	}
}
