package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/logiport/logiport_backend/internal/core/ports/repositories"
)

// lastTransactionNumberKey is the app_settings row holding the counter.
const lastTransactionNumberKey = "last_transaction_number"

type PgxNumberingRepository struct {
	BaseRepository
}

// newPgxNumberingRepository creates a new repository for the transaction
// number counter.
func newPgxNumberingRepository(pool *pgxpool.Pool) portsrepo.NumberingRepositoryFacade {
	return &PgxNumberingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.NumberingRepositoryFacade = (*PgxNumberingRepository)(nil)

// GetLastNumber returns the stored counter, or 0 when never written.
func (r *PgxNumberingRepository) GetLastNumber(ctx context.Context) (int64, error) {
	query := `SELECT value FROM app_settings WHERE key = $1;`

	var value string
	err := r.Pool.QueryRow(ctx, query, lastTransactionNumberKey).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read %s: %w", lastTransactionNumberKey, err)
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt %s value %q: %w", lastTransactionNumberKey, value, err)
	}
	return n, nil
}

// SaveLastNumber persists the counter.
func (r *PgxNumberingRepository) SaveLastNumber(ctx context.Context, n int64) error {
	query := `
		INSERT INTO app_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;
	`
	if _, err := r.Pool.Exec(ctx, query, lastTransactionNumberKey, strconv.FormatInt(n, 10)); err != nil {
		return fmt.Errorf("failed to save %s: %w", lastTransactionNumberKey, err)
	}
	return nil
}

// MaxAssignedNumber returns the highest numeric transaction number present
// in the transactions table. Numbers with a non-numeric prefix count by
// their digits.
func (r *PgxNumberingRepository) MaxAssignedNumber(ctx context.Context) (int64, error) {
	// Strip non-digits so prefixed numbers like "T42" compare numerically.
	query := `
		SELECT COALESCE(MAX(NULLIF(regexp_replace(number, '\D', '', 'g'), '')::bigint), 0)
		FROM transactions;
	`
	var max int64
	if err := r.Pool.QueryRow(ctx, query).Scan(&max); err != nil {
		return 0, fmt.Errorf("failed to read max assigned transaction number: %w", err)
	}
	return max, nil
}

// NumberExists reports whether a transaction already carries the number.
func (r *PgxNumberingRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM transactions WHERE number = $1);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, number).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to probe transaction number %s: %w", number, err)
	}
	return exists, nil
}
