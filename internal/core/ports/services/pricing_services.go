package services

import (
	"context"

	"github.com/logiport/logiport_backend/internal/core/domain"
	"github.com/logiport/logiport_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// PricingReaderSvc defines read/selection operations over the price list.
type PricingReaderSvc interface {
	// ListPricingTypes retrieves all pricing types.
	ListPricingTypes(ctx context.Context) ([]domain.PricingType, error)

	// GetPricingTypeByID retrieves a pricing type by ID.
	GetPricingTypeByID(ctx context.Context, pricingTypeID string) (*domain.PricingType, error)

	// FindBestPrice selects the applicable price rule for the query,
	// walking the fallback ladder (exact delivery method, NULL delivery
	// method, any delivery method). Returns ErrNotFound when nothing
	// matches.
	FindBestPrice(ctx context.Context, query dto.BestPriceQuery) (*domain.PriceRule, error)
}

// PricingWriterSvc defines write operations for the price list.
type PricingWriterSvc interface {
	// CreatePricingType persists a new pricing type.
	CreatePricingType(ctx context.Context, req dto.CreatePricingTypeRequest, creatorUserID string) (*domain.PricingType, error)

	// CreatePriceRule persists a new price rule.
	CreatePriceRule(ctx context.Context, req dto.CreatePriceRuleRequest, creatorUserID string) (*domain.PriceRule, error)

	// DeactivatePriceRule marks a price rule inactive.
	DeactivatePriceRule(ctx context.Context, priceRuleID string, updaterUserID string) error
}

// LineTotalCalculator computes a goods line total from its measures and the
// line's pricing type.
type LineTotalCalculator interface {
	// CalculateLineTotal computes base(computeBy)/divisor * unitPrice for
	// the given pricing type.
	CalculateLineTotal(ctx context.Context, pricingTypeID string, quantity, netKg, grossKg, unitPrice decimal.Decimal) (decimal.Decimal, error)
}

// PricingSvcFacade combines all pricing-related service interfaces
type PricingSvcFacade interface {
	PricingReaderSvc
	PricingWriterSvc
	LineTotalCalculator
}
