package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/logiport/logiport_backend/internal/apperrors"
	"github.com/logiport/logiport_backend/internal/core/domain"
	portsrepo "github.com/logiport/logiport_backend/internal/core/ports/repositories"
	"github.com/logiport/logiport_backend/internal/models"
	"github.com/logiport/logiport_backend/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, number, kind, seller_company_id, buyer_company_id, currency_code, status, transaction_date, notes, totals_count, totals_gross_kg, totals_net_kg, totals_value, created_at, created_by, last_updated_at, last_updated_by`

const transactionItemColumns = `item_id, transaction_id, material_id, description, quantity, gross_kg, net_kg, unit_price, line_total, pricing_type_id, currency_code`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Number,
		&m.Kind,
		&m.SellerCompanyID,
		&m.BuyerCompanyID,
		&m.CurrencyCode,
		&m.Status,
		&m.TransactionDate,
		&m.Notes,
		&m.TotalsCount,
		&m.TotalsGrossKg,
		&m.TotalsNetKg,
		&m.TotalsValue,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanTransactionItem(row pgx.Row) (models.TransactionItem, error) {
	var m models.TransactionItem
	err := row.Scan(
		&m.ItemID,
		&m.TransactionID,
		&m.MaterialID,
		&m.Description,
		&m.Quantity,
		&m.GrossKg,
		&m.NetKg,
		&m.UnitPrice,
		&m.LineTotal,
		&m.PricingTypeID,
		&m.CurrencyCode,
	)
	return m, err
}

// SaveTransaction upserts the header and replaces the item lines in a
// single database transaction. A unique violation on the transaction
// number is reported as apperrors.ErrDuplicate.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	headerQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (transaction_id) DO UPDATE SET
			kind = EXCLUDED.kind,
			seller_company_id = EXCLUDED.seller_company_id,
			buyer_company_id = EXCLUDED.buyer_company_id,
			currency_code = EXCLUDED.currency_code,
			status = EXCLUDED.status,
			transaction_date = EXCLUDED.transaction_date,
			notes = EXCLUDED.notes,
			totals_count = EXCLUDED.totals_count,
			totals_gross_kg = EXCLUDED.totals_gross_kg,
			totals_net_kg = EXCLUDED.totals_net_kg,
			totals_value = EXCLUDED.totals_value,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.TransactionID,
		m.Number,
		m.Kind,
		m.SellerCompanyID,
		m.BuyerCompanyID,
		m.CurrencyCode,
		m.Status,
		m.TransactionDate,
		m.Notes,
		m.TotalsCount,
		m.TotalsGrossKg,
		m.TotalsNetKg,
		m.TotalsValue,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("transaction number %s already taken: %w", m.Number, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM transaction_items WHERE transaction_id = $1;`, m.TransactionID); err != nil {
		return fmt.Errorf("failed to clear items of transaction %s: %w", m.TransactionID, err)
	}

	itemQuery := `
		INSERT INTO transaction_items (` + transactionItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, item := range txn.Items {
		mi := mapping.ToModelTransactionItem(item)
		_, err := tx.Exec(ctx, itemQuery,
			mi.ItemID,
			mi.TransactionID,
			mi.MaterialID,
			mi.Description,
			mi.Quantity,
			mi.GrossKg,
			mi.NetKg,
			mi.UnitPrice,
			mi.LineTotal,
			mi.PricingTypeID,
			mi.CurrencyCode,
		)
		if err != nil {
			return fmt.Errorf("failed to save item %s of transaction %s: %w", mi.ItemID, m.TransactionID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction header with its items.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	headerQuery := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, headerQuery, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	itemsQuery := `SELECT ` + transactionItemColumns + ` FROM transaction_items WHERE transaction_id = $1 ORDER BY item_id;`
	rows, err := r.Pool.Query(ctx, itemsQuery, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items of transaction %s: %w", transactionID, err)
	}
	defer rows.Close()

	itemModels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TransactionItem, error) {
		return scanTransactionItem(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan items of transaction %s: %w", transactionID, err)
	}

	d := mapping.ToDomainTransaction(m)
	d.Items = mapping.ToDomainTransactionItemSlice(itemModels)
	return &d, nil
}

// ListTransactions retrieves transaction headers ordered by transaction
// date then creation time descending, optionally filtered by status,
// starting strictly after the cursor pair. The tuple comparison keeps rows
// sharing a transaction date reachable across page boundaries. Items are
// not loaded for list views.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, status *domain.TransactionStatus, afterDate, afterCreatedAt time.Time, limit int) ([]domain.Transaction, error) {
	var conditions []string
	var args []interface{}

	if status != nil {
		args = append(args, string(*status))
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}
	if !afterDate.IsZero() {
		args = append(args, afterDate, afterCreatedAt)
		conditions = append(conditions, "(transaction_date, created_at) < ($"+strconv.Itoa(len(args)-1)+", $"+strconv.Itoa(len(args))+")")
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	args = append(args, limit)
	query += " ORDER BY transaction_date DESC, created_at DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = mapping.ToDomainTransaction(m)
	}
	return ds, nil
}

// UpdateTransactionStatus moves a transaction to a new status.
func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, updaterUserID string) error {
	query := `
		UPDATE transactions
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, transactionID, string(status), time.Now(), updaterUserID)
	if err != nil {
		return fmt.Errorf("failed to update status of transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction and its items.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM transaction_items WHERE transaction_id = $1;`, transactionID); err != nil {
		return fmt.Errorf("failed to delete items of transaction %s: %w", transactionID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
