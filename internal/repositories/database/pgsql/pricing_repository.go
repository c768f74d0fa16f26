package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/logiport/logiport_backend/internal/apperrors"
	"github.com/logiport/logiport_backend/internal/core/domain"
	portsrepo "github.com/logiport/logiport_backend/internal/core/ports/repositories"
	"github.com/logiport/logiport_backend/internal/models"
	"github.com/logiport/logiport_backend/internal/utils/mapping"
)

type PgxPricingTypeRepository struct {
	BaseRepository
}

// newPgxPricingTypeRepository creates a new repository for pricing types.
func newPgxPricingTypeRepository(pool *pgxpool.Pool) portsrepo.PricingTypeRepositoryFacade {
	return &PgxPricingTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PricingTypeRepositoryFacade = (*PgxPricingTypeRepository)(nil)

const pricingTypeColumns = `pricing_type_id, code, compute_by, price_unit, divisor, created_at, created_by, last_updated_at, last_updated_by`

func scanPricingType(row pgx.Row) (models.PricingType, error) {
	var m models.PricingType
	err := row.Scan(
		&m.PricingTypeID,
		&m.Code,
		&m.ComputeBy,
		&m.PriceUnit,
		&m.Divisor,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePricingType persists a new pricing type.
func (r *PgxPricingTypeRepository) SavePricingType(ctx context.Context, pricingType domain.PricingType) error {
	m := mapping.ToModelPricingType(pricingType)

	query := `
		INSERT INTO pricing_types (` + pricingTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PricingTypeID,
		m.Code,
		m.ComputeBy,
		m.PriceUnit,
		m.Divisor,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save pricing type %s: %w", m.Code, err)
	}
	return nil
}

// FindPricingTypeByID retrieves a pricing type by its ID.
func (r *PgxPricingTypeRepository) FindPricingTypeByID(ctx context.Context, pricingTypeID string) (*domain.PricingType, error) {
	query := `SELECT ` + pricingTypeColumns + ` FROM pricing_types WHERE pricing_type_id = $1;`

	m, err := scanPricingType(r.Pool.QueryRow(ctx, query, pricingTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pricing type %s: %w", pricingTypeID, err)
	}

	d := mapping.ToDomainPricingType(m)
	return &d, nil
}

// ListPricingTypes retrieves all pricing types.
func (r *PgxPricingTypeRepository) ListPricingTypes(ctx context.Context) ([]domain.PricingType, error) {
	query := `SELECT ` + pricingTypeColumns + ` FROM pricing_types ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query pricing types: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PricingType, error) {
		return scanPricingType(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan pricing types: %w", err)
	}

	ds := make([]domain.PricingType, len(ms))
	for i, m := range ms {
		ds[i] = mapping.ToDomainPricingType(m)
	}
	return ds, nil
}

type PgxPriceRuleRepository struct {
	BaseRepository
}

// newPgxPriceRuleRepository creates a new repository for price rules.
func newPgxPriceRuleRepository(pool *pgxpool.Pool) portsrepo.PriceRuleRepositoryFacade {
	return &PgxPriceRuleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PriceRuleRepositoryFacade = (*PgxPriceRuleRepository)(nil)

const priceRuleColumns = `price_rule_id, seller_company_id, buyer_company_id, material_id, pricing_type_id, currency_code, delivery_method_id, unit_price, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanPriceRule(row pgx.Row) (models.PriceRule, error) {
	var m models.PriceRule
	err := row.Scan(
		&m.PriceRuleID,
		&m.SellerCompanyID,
		&m.BuyerCompanyID,
		&m.MaterialID,
		&m.PricingTypeID,
		&m.CurrencyCode,
		&m.DeliveryMethodID,
		&m.UnitPrice,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePriceRule persists a new price rule.
func (r *PgxPriceRuleRepository) SavePriceRule(ctx context.Context, rule domain.PriceRule) error {
	m := mapping.ToModelPriceRule(rule)

	query := `
		INSERT INTO price_rules (` + priceRuleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PriceRuleID,
		m.SellerCompanyID,
		m.BuyerCompanyID,
		m.MaterialID,
		m.PricingTypeID,
		m.CurrencyCode,
		m.DeliveryMethodID,
		m.UnitPrice,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save price rule %s: %w", m.PriceRuleID, err)
	}
	return nil
}

// FindPriceRuleByID retrieves a price rule by its ID.
func (r *PgxPriceRuleRepository) FindPriceRuleByID(ctx context.Context, priceRuleID string) (*domain.PriceRule, error) {
	query := `SELECT ` + priceRuleColumns + ` FROM price_rules WHERE price_rule_id = $1;`

	m, err := scanPriceRule(r.Pool.QueryRow(ctx, query, priceRuleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find price rule %s: %w", priceRuleID, err)
	}

	d := mapping.ToDomainPriceRule(m)
	return &d, nil
}

// ListPriceRules retrieves price rules matching the filter, newest first.
func (r *PgxPriceRuleRepository) ListPriceRules(ctx context.Context, filter portsrepo.PriceRuleFilter) ([]domain.PriceRule, error) {
	var conditions []string
	var args []interface{}

	addCondition := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		conditions = append(conditions, column+" = $"+strconv.Itoa(len(args)))
	}

	addCondition("seller_company_id", filter.SellerCompanyID)
	addCondition("buyer_company_id", filter.BuyerCompanyID)
	addCondition("material_id", filter.MaterialID)
	addCondition("pricing_type_id", filter.PricingTypeID)
	addCondition("currency_code", filter.CurrencyCode)
	addCondition("delivery_method_id", filter.DeliveryMethodID)

	if filter.MatchNilDeliveryMethod {
		conditions = append(conditions, "delivery_method_id IS NULL")
	}
	if filter.OnlyActive {
		conditions = append(conditions, "is_active = TRUE")
	}

	query := `SELECT ` + priceRuleColumns + ` FROM price_rules`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query price rules: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PriceRule, error) {
		return scanPriceRule(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan price rules: %w", err)
	}

	return mapping.ToDomainPriceRuleSlice(ms), nil
}

// DeactivatePriceRule marks a price rule inactive.
func (r *PgxPriceRuleRepository) DeactivatePriceRule(ctx context.Context, priceRuleID string, updaterUserID string) error {
	query := `
		UPDATE price_rules
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE price_rule_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, priceRuleID, time.Now(), updaterUserID)
	if err != nil {
		return fmt.Errorf("failed to deactivate price rule %s: %w", priceRuleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
