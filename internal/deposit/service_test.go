package deposit

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazario/bazario-wallet/internal/events"
	"github.com/bazario/bazario-wallet/internal/guard"
	"github.com/bazario/bazario-wallet/internal/ledger"
	"github.com/bazario/bazario-wallet/internal/logging"
	"github.com/bazario/bazario-wallet/internal/notification"
)

type fixture struct {
	service *Service
	store   *MemoryStore
	ledger  ledger.Ledger
	notes   *notification.MemoryStore
	guard   guard.Guard
	events  *events.Recorder
}

func newFixture() *fixture {
	l := ledger.NewInMemory()
	notes := notification.NewMemoryStore()
	store := NewMemoryStore(l, notes)
	g := guard.NewMemory()
	recorder := events.NewRecorder()
	return &fixture{
		service: NewService(store, g, recorder, logging.Discard()),
		store:   store,
		ledger:  l,
		notes:   notes,
		guard:   g,
		events:  recorder,
	}
}

func (f *fixture) seedRequest(t *testing.T, userID string, balance, pending, amount int64) DepositRequest {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.ledger.EnsureWallet(ctx, userID))
	ledger.SeedWallet(f.ledger, userID, decimal.NewFromInt(balance), decimal.NewFromInt(pending))

	req := DepositRequest{
		ID:            "req-" + userID,
		UserID:        userID,
		UserName:      "Vendor " + userID,
		Amount:        decimal.NewFromInt(amount),
		TransactionID: "JC-12345",
		Status:        StatusPending,
		Date:          f.service.now(),
	}
	f.store.mu.Lock()
	f.store.requests[req.ID] = req
	f.store.mu.Unlock()
	return req
}

func TestProcessApprove(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// balance=500, pendingDeposit=200, approve a 200 request
	req := f.seedRequest(t, "vendor-1", 500, 200, 200)

	outcome, err := f.service.Process(ctx, req.ID, ActionApprove)
	require.NoError(t, err)

	assert.Equal(t, StatusApproved, outcome.Request.Status)
	require.NotNil(t, outcome.Request.ProcessedAt)

	w, err := f.ledger.Wallet(ctx, "vendor-1")
	require.NoError(t, err)
	assert.True(t, w.Balance.Equal(decimal.NewFromInt(700)), "balance %s", w.Balance)
	assert.True(t, w.PendingDeposit.Equal(decimal.Zero), "pending %s", w.PendingDeposit)

	history, err := f.ledger.History(ctx, "vendor-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, ledger.TransactionTypeDeposit, history[0].Type)
	assert.Equal(t, ledger.TransactionStatusCompleted, history[0].Status)
	assert.Contains(t, history[0].Description, "JC-12345")
	assert.Contains(t, history[0].ID, req.ID)

	require.Equal(t, 1, f.notes.CountFor("vendor-1"))
	notes, _ := f.notes.ListByUser(ctx, "vendor-1")
	assert.Equal(t, notification.TypeSuccess, notes[0].Type)
	assert.Equal(t, WalletHistoryLink, notes[0].Link)
	assert.False(t, notes[0].IsRead)

	assert.Equal(t, []string{events.WalletUpdated}, f.events.Events())
}

func TestProcessReject(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// balance=500, pendingDeposit=350, reject a 150 request
	req := f.seedRequest(t, "vendor-1", 500, 350, 150)

	outcome, err := f.service.Process(ctx, req.ID, ActionReject)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, outcome.Request.Status)
	assert.Nil(t, outcome.Transaction)

	w, err := f.ledger.Wallet(ctx, "vendor-1")
	require.NoError(t, err)
	assert.True(t, w.Balance.Equal(decimal.NewFromInt(500)), "balance %s", w.Balance)
	assert.True(t, w.PendingDeposit.Equal(decimal.NewFromInt(200)), "pending %s", w.PendingDeposit)

	history, _ := f.ledger.History(ctx, "vendor-1")
	assert.Empty(t, history, "rejection must not append history")

	notes, _ := f.notes.ListByUser(ctx, "vendor-1")
	require.Len(t, notes, 1)
	assert.Equal(t, notification.TypeError, notes[0].Type)
}

func TestProcessIsNotRepeatable(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	req := f.seedRequest(t, "vendor-1", 0, 100, 100)

	_, err := f.service.Process(ctx, req.ID, ActionApprove)
	require.NoError(t, err)

	_, err = f.service.Process(ctx, req.ID, ActionApprove)
	require.ErrorIs(t, err, ErrNotPending)

	// Effects of the first call only.
	w, _ := f.ledger.Wallet(ctx, "vendor-1")
	assert.True(t, w.Balance.Equal(decimal.NewFromInt(100)))
	history, _ := f.ledger.History(ctx, "vendor-1")
	assert.Len(t, history, 1)
	assert.Equal(t, 1, f.notes.CountFor("vendor-1"))
}

func TestProcessAlreadyTerminal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	req := f.seedRequest(t, "vendor-1", 500, 0, 200)

	f.store.mu.Lock()
	r := f.store.requests[req.ID]
	r.Status = StatusApproved
	f.store.requests[req.ID] = r
	f.store.mu.Unlock()

	_, err := f.service.Process(ctx, req.ID, ActionReject)
	require.ErrorIs(t, err, ErrNotPending)

	w, _ := f.ledger.Wallet(ctx, "vendor-1")
	assert.True(t, w.Balance.Equal(decimal.NewFromInt(500)), "no writes on validation error")
	assert.Empty(t, f.events.Events())
}

func TestProcessUnknownRequest(t *testing.T) {
	f := newFixture()

	_, err := f.service.Process(context.Background(), "missing", ActionApprove)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestProcessInvalidAction(t *testing.T) {
	f := newFixture()
	req := f.seedRequest(t, "vendor-1", 0, 50, 50)

	_, err := f.service.Process(context.Background(), req.ID, Action(99))
	require.ErrorIs(t, err, ErrInvalidAction)

	// Rejected before the guard: the request must remain processable.
	_, err = f.service.Process(context.Background(), req.ID, ActionApprove)
	require.NoError(t, err)
}

func TestProcessRefusedWhileInFlight(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	req := f.seedRequest(t, "vendor-1", 0, 75, 75)

	require.NoError(t, f.guard.Acquire(ctx, req.ID))

	_, err := f.service.Process(ctx, req.ID, ActionApprove)
	require.ErrorIs(t, err, guard.ErrLocked)

	// Refused locally, before any store effect.
	w, _ := f.ledger.Wallet(ctx, "vendor-1")
	assert.True(t, w.PendingDeposit.Equal(decimal.NewFromInt(75)))
	assert.Empty(t, f.events.Events())

	f.guard.Release(ctx, req.ID)
	_, err = f.service.Process(ctx, req.ID, ActionApprove)
	require.NoError(t, err)
}

func TestProcessFailedFinalizeLeavesNoPartialState(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	req := f.seedRequest(t, "vendor-1", 500, 200, 200)

	storeDown := errors.New("store unavailable")
	FailNextFinalize(f.store, storeDown)

	_, err := f.service.Process(ctx, req.ID, ActionApprove)
	require.ErrorIs(t, err, storeDown)

	// All three mutations are one commit: none may have landed.
	w, _ := f.ledger.Wallet(ctx, "vendor-1")
	assert.True(t, w.Balance.Equal(decimal.NewFromInt(500)))
	assert.True(t, w.PendingDeposit.Equal(decimal.NewFromInt(200)))

	got, err := f.store.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
	assert.Nil(t, got.ProcessedAt)
	assert.Equal(t, 0, f.notes.CountFor("vendor-1"))
	assert.Empty(t, f.events.Events())

	// The guard was released on the failure path; a retry succeeds.
	_, err = f.service.Process(ctx, req.ID, ActionApprove)
	require.NoError(t, err)
}

func TestCreateRaisesPendingCounter(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.service.Create(ctx, CreateInput{
		UserID:        "vendor-1",
		UserName:      "Vendor One",
		Amount:        decimal.NewFromInt(300),
		TransactionID: "JC-99",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, created.Status)

	w, err := f.ledger.Wallet(ctx, "vendor-1")
	require.NoError(t, err)
	assert.True(t, w.PendingDeposit.Equal(decimal.NewFromInt(300)))
	assert.True(t, w.Balance.Equal(decimal.Zero))
}

func TestCreateRejectsBadInput(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.service.Create(ctx, CreateInput{UserID: "v", UserName: "V", Amount: decimal.Zero, TransactionID: "x"})
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = f.service.Create(ctx, CreateInput{UserID: "v", UserName: "V", Amount: decimal.NewFromInt(10)})
	require.Error(t, err)
}

func TestDeletePendingReleasesCounter(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	req := f.seedRequest(t, "vendor-1", 100, 250, 250)

	require.NoError(t, f.service.Delete(ctx, req.ID))

	w, _ := f.ledger.Wallet(ctx, "vendor-1")
	assert.True(t, w.PendingDeposit.Equal(decimal.Zero), "pending released on delete")
	assert.True(t, w.Balance.Equal(decimal.NewFromInt(100)))

	_, err := f.store.Get(ctx, req.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTerminalKeepsCounters(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	req := f.seedRequest(t, "vendor-1", 100, 0, 50)

	f.store.mu.Lock()
	r := f.store.requests[req.ID]
	r.Status = StatusRejected
	f.store.requests[req.ID] = r
	f.store.mu.Unlock()

	require.NoError(t, f.service.Delete(ctx, req.ID))

	w, _ := f.ledger.Wallet(ctx, "vendor-1")
	assert.True(t, w.PendingDeposit.Equal(decimal.Zero))
	assert.True(t, w.Balance.Equal(decimal.NewFromInt(100)))
}
