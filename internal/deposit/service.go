package deposit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bazario/bazario-wallet/internal/events"
	"github.com/bazario/bazario-wallet/internal/guard"
	"github.com/bazario/bazario-wallet/internal/ledger"
	"github.com/bazario/bazario-wallet/internal/notification"
)

// WalletHistoryLink is the in-app destination notifications point at.
const WalletHistoryLink = "wallet-history"

// Service drives the deposit-request lifecycle: vendor-side creation and
// administrator-side reconciliation.
type Service struct {
	store     Store
	guard     guard.Guard
	publisher events.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewService constructs the deposit service.
func NewService(store Store, g guard.Guard, publisher events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		guard:     g,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateInput captures a vendor's top-up claim.
type CreateInput struct {
	UserID        string
	UserName      string
	Amount        decimal.Decimal
	TransactionID string
	ScreenshotURL string
}

// Outcome describes a committed reconciliation.
type Outcome struct {
	Request      DepositRequest
	Transaction  *ledger.Transaction
	Notification notification.Notification
}

// Create files a new pending deposit request. The insert and the wallet's
// pending-deposit increment commit together, keeping the counter equal to the
// sum of the user's pending request amounts.
func (s *Service) Create(ctx context.Context, input CreateInput) (DepositRequest, error) {
	if input.Amount.Sign() <= 0 {
		return DepositRequest{}, ErrInvalidAmount
	}
	if input.TransactionID == "" {
		return DepositRequest{}, fmt.Errorf("transaction reference is required")
	}

	req := DepositRequest{
		ID:            uuid.NewString(),
		UserID:        input.UserID,
		UserName:      input.UserName,
		Amount:        input.Amount,
		TransactionID: input.TransactionID,
		ScreenshotURL: input.ScreenshotURL,
		Status:        StatusPending,
		Date:          s.now().UTC(),
	}

	if err := s.store.Create(ctx, req); err != nil {
		return DepositRequest{}, err
	}

	s.logger.Info("deposit request created",
		slog.String("request_id", req.ID),
		slog.String("user_id", req.UserID),
		slog.String("amount", req.Amount.String()))

	return req, nil
}

// List returns deposit requests, optionally filtered by status.
func (s *Service) List(ctx context.Context, status Status) ([]DepositRequest, error) {
	return s.store.List(ctx, status)
}

// Delete removes a request at the administrator's discretion. Allowed in any
// state; a pending request's amount is released from the wallet counter.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// Process reconciles one pending request. The guard admits a single in-flight
// action per request id; the terminal transition itself commits atomically in
// the store, conditional on the request still being pending, so a concurrent
// session racing past the guard still cannot double-process.
//
// The committed amount is the value read here; concurrent edits to the
// request between read and commit are not defended beyond the status check.
func (s *Service) Process(ctx context.Context, requestID string, action Action) (Outcome, error) {
	if !action.valid() {
		return Outcome{}, ErrInvalidAction
	}

	if err := s.guard.Acquire(ctx, requestID); err != nil {
		return Outcome{}, err
	}
	defer s.guard.Release(ctx, requestID)

	req, err := s.store.Get(ctx, requestID)
	if err != nil {
		return Outcome{}, err
	}
	if req.Status != StatusPending {
		return Outcome{}, ErrNotPending
	}
	if req.Amount.Sign() <= 0 {
		return Outcome{}, ErrInvalidAmount
	}

	now := s.now().UTC()

	f := Finalization{
		RequestID:   req.ID,
		UserID:      req.UserID,
		Action:      action,
		Amount:      req.Amount,
		ProcessedAt: now,
		Note:        buildNotification(req, action, now),
	}
	if action == ActionApprove {
		f.Txn = buildTransaction(req, now)
	}

	if err := s.store.Finalize(ctx, f); err != nil {
		s.logger.Warn("deposit reconciliation failed",
			slog.String("request_id", req.ID),
			slog.String("action", action.String()),
			slog.Any("error", err))
		return Outcome{}, err
	}

	// The commit already happened; a lost event only delays a screen refresh.
	if err := s.publisher.Publish(ctx, events.WalletUpdated); err != nil {
		s.logger.Warn("publish wallet_updated", slog.Any("error", err))
	}

	req.Status = action.TerminalStatus()
	req.ProcessedAt = &now

	s.logger.Info("deposit reconciled",
		slog.String("request_id", req.ID),
		slog.String("user_id", req.UserID),
		slog.String("action", action.String()),
		slog.String("amount", req.Amount.String()))

	return Outcome{Request: req, Transaction: f.Txn, Notification: f.Note}, nil
}

// buildTransaction derives the history entry for an approval. The id embeds
// the request id and timestamp so a re-derivation is detectable.
func buildTransaction(req DepositRequest, now time.Time) *ledger.Transaction {
	return &ledger.Transaction{
		ID:          fmt.Sprintf("tx_dep_%s_%d", req.ID, now.UnixMilli()),
		UserID:      req.UserID,
		Type:        ledger.TransactionTypeDeposit,
		Amount:      req.Amount,
		Date:        now.Format("2006-01-02"),
		Status:      ledger.TransactionStatusCompleted,
		Description: fmt.Sprintf("Deposit Confirmed (%s)", req.TransactionID),
	}
}

func buildNotification(req DepositRequest, action Action, now time.Time) notification.Notification {
	n := notification.Notification{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		IsRead:    false,
		CreatedAt: now,
		Link:      WalletHistoryLink,
	}
	if action == ActionApprove {
		n.Title = "Funds Added! 💰"
		n.Message = fmt.Sprintf("Your deposit of Rs. %s has been verified and added to your wallet.", req.Amount)
		n.Type = notification.TypeSuccess
	} else {
		n.Title = "Deposit Rejected ❌"
		n.Message = fmt.Sprintf("Your deposit request for Rs. %s was rejected by admin.", req.Amount)
		n.Type = notification.TypeError
	}
	return n
}
