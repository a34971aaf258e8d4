package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Querier is the subset of pgx executors the ledger statements run against.
// Both *pgxpool.Pool and pgx.Tx satisfy it, so the same statements serve the
// standalone ledger operations and the joint reconciliation transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresLedger persists wallet counters and history in PostgreSQL.
type PostgresLedger struct {
	db *pgxpool.Pool
}

// NewPostgresLedger constructs a Postgres-backed ledger implementation.
func NewPostgresLedger(db *pgxpool.Pool) *PostgresLedger {
	return &PostgresLedger{db: db}
}

// EnsureWallet guarantees a wallet row exists for the provided user.
func (l *PostgresLedger) EnsureWallet(ctx context.Context, userID string) error {
	_, err := l.db.Exec(ctx, `INSERT INTO wallets (user_id) VALUES ($1)
        ON CONFLICT (user_id) DO NOTHING`, userID)
	return err
}

// Wallet returns the current counters for the user.
func (l *PostgresLedger) Wallet(ctx context.Context, userID string) (Wallet, error) {
	return WalletTx(ctx, l.db, userID)
}

// History returns the user's wallet history in insertion order.
func (l *PostgresLedger) History(ctx context.Context, userID string) ([]Transaction, error) {
	rows, err := l.db.Query(ctx, `SELECT id, user_id, type, amount, date, status, description
        FROM wallet_history WHERE user_id = $1 ORDER BY position`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Date, &t.Status, &t.Description); err != nil {
			return nil, err
		}
		history = append(history, t)
	}
	return history, rows.Err()
}

// AddPending atomically increases the user's pending-deposit counter. Used by
// the deposit-request creation path.
func (l *PostgresLedger) AddPending(ctx context.Context, userID string, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}
	return AddPendingTx(ctx, l.db, userID, amount)
}

// ApplyApproval credits the balance, releases the pending amount and appends
// the history entry inside one transaction.
func (l *PostgresLedger) ApplyApproval(ctx context.Context, userID string, txn Transaction) (Wallet, error) {
	if txn.Amount.Sign() <= 0 {
		return Wallet{}, ErrNonPositiveAmount
	}

	tx, err := l.db.Begin(ctx)
	if err != nil {
		return Wallet{}, err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	if err := ApplyApprovalTx(ctx, tx, userID, txn); err != nil {
		return Wallet{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Wallet{}, err
	}

	return l.Wallet(ctx, userID)
}

// ApplyRejection releases the pending amount only; no balance change, no entry.
func (l *PostgresLedger) ApplyRejection(ctx context.Context, userID string, amount decimal.Decimal) (Wallet, error) {
	if amount.Sign() <= 0 {
		return Wallet{}, ErrNonPositiveAmount
	}

	if err := ApplyRejectionTx(ctx, l.db, userID, amount); err != nil {
		return Wallet{}, err
	}

	return l.Wallet(ctx, userID)
}

// EnsureWalletTx guarantees a wallet row exists, through the provided querier.
func EnsureWalletTx(ctx context.Context, q Querier, userID string) error {
	_, err := q.Exec(ctx, `INSERT INTO wallets (user_id) VALUES ($1)
        ON CONFLICT (user_id) DO NOTHING`, userID)
	return err
}

// WalletTx reads wallet counters through the provided querier.
func WalletTx(ctx context.Context, q Querier, userID string) (Wallet, error) {
	w := Wallet{UserID: userID}
	err := q.QueryRow(ctx, `SELECT balance, pending_deposit FROM wallets WHERE user_id = $1`, userID).
		Scan(&w.Balance, &w.PendingDeposit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Wallet{}, ErrWalletNotFound
		}
		return Wallet{}, err
	}
	return w, nil
}

// ApplyApprovalTx runs the approval mutation against the provided querier: a
// single increment pair on the wallet row plus one history insert. Callers
// that need the request update and notification in the same commit pass their
// own transaction here.
func ApplyApprovalTx(ctx context.Context, q Querier, userID string, txn Transaction) error {
	tag, err := q.Exec(ctx, `UPDATE wallets
        SET balance = balance + $2, pending_deposit = pending_deposit - $2
        WHERE user_id = $1`, userID, txn.Amount)
	if err != nil {
		return fmt.Errorf("apply approval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWalletNotFound
	}

	_, err = q.Exec(ctx, `INSERT INTO wallet_history (id, user_id, type, amount, date, status, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		txn.ID, userID, txn.Type, txn.Amount, txn.Date, txn.Status, txn.Description)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// ApplyRejectionTx runs the rejection mutation against the provided querier.
func ApplyRejectionTx(ctx context.Context, q Querier, userID string, amount decimal.Decimal) error {
	tag, err := q.Exec(ctx, `UPDATE wallets
        SET pending_deposit = pending_deposit - $2
        WHERE user_id = $1`, userID, amount)
	if err != nil {
		return fmt.Errorf("apply rejection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWalletNotFound
	}
	return nil
}

// AddPendingTx runs the pending-deposit increment against the provided querier.
func AddPendingTx(ctx context.Context, q Querier, userID string, amount decimal.Decimal) error {
	tag, err := q.Exec(ctx, `UPDATE wallets
        SET pending_deposit = pending_deposit + $2
        WHERE user_id = $1`, userID, amount)
	if err != nil {
		return fmt.Errorf("add pending: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWalletNotFound
	}
	return nil
}
