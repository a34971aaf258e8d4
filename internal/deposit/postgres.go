package deposit

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bazario/bazario-wallet/internal/ledger"
	"github.com/bazario/bazario-wallet/internal/notification"
)

// PostgresStore persists deposit requests in PostgreSQL.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore builds a store backed by PostgreSQL.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create inserts the pending request and raises the vendor's pending-deposit
// counter in one transaction.
func (s *PostgresStore) Create(ctx context.Context, req DepositRequest) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	if err := ledger.EnsureWalletTx(ctx, tx, req.UserID); err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `INSERT INTO deposit_requests
        (id, user_id, user_name, amount, transaction_id, screenshot_url, status, date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		req.ID, req.UserID, req.UserName, req.Amount, req.TransactionID, req.ScreenshotURL, req.Status, req.Date)
	if err != nil {
		return fmt.Errorf("insert deposit request: %w", err)
	}

	if err := ledger.AddPendingTx(ctx, tx, req.UserID, req.Amount); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Get fetches one request by id.
func (s *PostgresStore) Get(ctx context.Context, id string) (DepositRequest, error) {
	return scanRequest(s.db.QueryRow(ctx, selectRequest+` WHERE id = $1`, id))
}

// List returns requests newest first, optionally filtered by status.
func (s *PostgresStore) List(ctx context.Context, status Status) ([]DepositRequest, error) {
	query := selectRequest + ` ORDER BY date DESC`
	args := []any{}
	if status != "" {
		query = selectRequest + ` WHERE status = $1 ORDER BY date DESC`
		args = append(args, status)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DepositRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

// Delete removes a request. Deleting one that is still pending releases its
// contribution to the wallet's pending-deposit counter, keeping the counter
// equal to the sum of remaining pending requests.
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	req, err := scanRequest(tx.QueryRow(ctx, selectRequest+` WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return err
	}

	if req.Status == StatusPending {
		if err := ledger.ApplyRejectionTx(ctx, tx, req.UserID, req.Amount); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM deposit_requests WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Finalize commits the terminal transition as one transaction: conditional
// status flip, wallet mutation and notification insert all land together or
// not at all. A request that is no longer pending matches zero rows on the
// conditional update and nothing is committed.
func (s *PostgresStore) Finalize(ctx context.Context, f Finalization) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	tag, err := tx.Exec(ctx, `UPDATE deposit_requests
        SET status = $2, processed_at = $3
        WHERE id = $1 AND status = $4`,
		f.RequestID, f.Action.TerminalStatus(), f.ProcessedAt, StatusPending)
	if err != nil {
		return fmt.Errorf("finalize request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var status Status
		err := tx.QueryRow(ctx, `SELECT status FROM deposit_requests WHERE id = $1`, f.RequestID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return ErrNotPending
	}

	switch f.Action {
	case ActionApprove:
		if err := ledger.ApplyApprovalTx(ctx, tx, f.UserID, *f.Txn); err != nil {
			return err
		}
	case ActionReject:
		if err := ledger.ApplyRejectionTx(ctx, tx, f.UserID, f.Amount); err != nil {
			return err
		}
	default:
		return ErrInvalidAction
	}

	if err := notification.InsertTx(ctx, tx, f.Note); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	return tx.Commit(ctx)
}

const selectRequest = `SELECT id, user_id, user_name, amount, transaction_id, screenshot_url, status, date, processed_at
    FROM deposit_requests`

func scanRequest(row pgx.Row) (DepositRequest, error) {
	var req DepositRequest
	err := row.Scan(&req.ID, &req.UserID, &req.UserName, &req.Amount, &req.TransactionID,
		&req.ScreenshotURL, &req.Status, &req.Date, &req.ProcessedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DepositRequest{}, ErrNotFound
		}
		return DepositRequest{}, err
	}
	return req, nil
}
