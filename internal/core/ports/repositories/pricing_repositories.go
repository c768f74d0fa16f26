package repositories

import (
	"context"

	"github.com/logiport/logiport_backend/internal/core/domain"
)

// PricingTypeReader defines read operations for pricing types
type PricingTypeReader interface {
	// FindPricingTypeByID retrieves a pricing type by its ID.
	FindPricingTypeByID(ctx context.Context, pricingTypeID string) (*domain.PricingType, error)

	// ListPricingTypes retrieves all pricing types.
	ListPricingTypes(ctx context.Context) ([]domain.PricingType, error)
}

// PricingTypeWriter defines write operations for pricing types
type PricingTypeWriter interface {
	// SavePricingType persists a new pricing type.
	SavePricingType(ctx context.Context, pricingType domain.PricingType) error
}

// PricingTypeRepositoryFacade combines pricing type repository interfaces
type PricingTypeRepositoryFacade interface {
	PricingTypeReader
	PricingTypeWriter
}

// PriceRuleFilter narrows a price rule search. Nil pointer fields are not
// constrained; DeliveryMethodID distinguishes "unconstrained" (nil) from
// "must be NULL" via MatchNilDeliveryMethod.
type PriceRuleFilter struct {
	SellerCompanyID        *string
	BuyerCompanyID         *string
	MaterialID             *string
	PricingTypeID          *string
	CurrencyCode           *string
	DeliveryMethodID       *string
	MatchNilDeliveryMethod bool
	OnlyActive             bool
}

// PriceRuleReader defines read operations for price rules
type PriceRuleReader interface {
	// FindPriceRuleByID retrieves a price rule by its ID.
	FindPriceRuleByID(ctx context.Context, priceRuleID string) (*domain.PriceRule, error)

	// ListPriceRules retrieves price rules matching the filter, newest first.
	ListPriceRules(ctx context.Context, filter PriceRuleFilter) ([]domain.PriceRule, error)
}

// PriceRuleWriter defines write operations for price rules
type PriceRuleWriter interface {
	// SavePriceRule persists a new price rule.
	SavePriceRule(ctx context.Context, rule domain.PriceRule) error

	// DeactivatePriceRule marks a price rule inactive.
	DeactivatePriceRule(ctx context.Context, priceRuleID string, updaterUserID string) error
}

// PriceRuleRepositoryFacade combines price rule repository interfaces
type PriceRuleRepositoryFacade interface {
	PriceRuleReader
	PriceRuleWriter
}
