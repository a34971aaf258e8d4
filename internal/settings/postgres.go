package settings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists the payment-settings singleton in PostgreSQL.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore builds a store backed by PostgreSQL.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Get returns the stored settings, or the defaults when none were saved yet.
func (s *PostgresStore) Get(ctx context.Context) (PaymentInfo, error) {
	var info PaymentInfo
	err := s.db.QueryRow(ctx, `SELECT bank_name, account_title, account_number, instructions, custom_note
        FROM payment_info WHERE singleton`).
		Scan(&info.BankName, &info.AccountTitle, &info.AccountNumber, &info.Instructions, &info.CustomNote)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DefaultPaymentInfo(), nil
		}
		return PaymentInfo{}, err
	}
	return info, nil
}

// Save upserts the singleton row.
func (s *PostgresStore) Save(ctx context.Context, info PaymentInfo) error {
	_, err := s.db.Exec(ctx, `INSERT INTO payment_info (singleton, bank_name, account_title, account_number, instructions, custom_note, updated_at)
        VALUES (TRUE, $1, $2, $3, $4, $5, now())
        ON CONFLICT (singleton) DO UPDATE SET
            bank_name = EXCLUDED.bank_name,
            account_title = EXCLUDED.account_title,
            account_number = EXCLUDED.account_number,
            instructions = EXCLUDED.instructions,
            custom_note = EXCLUDED.custom_note,
            updated_at = now()`,
		info.BankName, info.AccountTitle, info.AccountNumber, info.Instructions, info.CustomNote)
	return err
}
