package notification

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bazario/bazario-wallet/internal/ledger"
)

// PostgresStore persists notifications in PostgreSQL.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore builds a store backed by PostgreSQL.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// ListByUser returns the user's notifications, newest first.
func (s *PostgresStore) ListByUser(ctx context.Context, userID string) ([]Notification, error) {
	rows, err := s.db.Query(ctx, `SELECT id, user_id, title, message, type, is_read, created_at, link
        FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt, &n.Link); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkRead flips the read marker for one notification.
func (s *PostgresStore) MarkRead(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertTx writes a notification through the provided querier, so the deposit
// store can include the insert in its joint reconciliation transaction.
func InsertTx(ctx context.Context, q ledger.Querier, n Notification) error {
	_, err := q.Exec(ctx, `INSERT INTO notifications (id, user_id, title, message, type, is_read, created_at, link)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID, n.UserID, n.Title, n.Message, n.Type, n.IsRead, n.CreatedAt, n.Link)
	return err
}
