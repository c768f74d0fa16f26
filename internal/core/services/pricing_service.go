package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/logiport/logiport_backend/internal/apperrors"
	"github.com/logiport/logiport_backend/internal/core/domain"
	portsrepo "github.com/logiport/logiport_backend/internal/core/ports/repositories"
	portssvc "github.com/logiport/logiport_backend/internal/core/ports/services"
	"github.com/logiport/logiport_backend/internal/dto"
	"github.com/shopspring/decimal"
)

var oneThousand = decimal.NewFromInt(1000)

// pricingService selects price rules and computes goods line totals.
type pricingService struct {
	pricingTypeRepo portsrepo.PricingTypeRepositoryFacade
	priceRuleRepo   portsrepo.PriceRuleRepositoryFacade
}

// NewPricingService creates a new pricing service.
func NewPricingService(pricingTypeRepo portsrepo.PricingTypeRepositoryFacade, priceRuleRepo portsrepo.PriceRuleRepositoryFacade) portssvc.PricingSvcFacade {
	return &pricingService{
		pricingTypeRepo: pricingTypeRepo,
		priceRuleRepo:   priceRuleRepo,
	}
}

var _ portssvc.PricingSvcFacade = (*pricingService)(nil)

func (s *pricingService) CreatePricingType(ctx context.Context, req dto.CreatePricingTypeRequest, creatorUserID string) (*domain.PricingType, error) {
	divisor := decimal.NewFromInt(1)
	if req.Divisor != nil {
		if req.Divisor.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: divisor must be positive", apperrors.ErrValidation)
		}
		divisor = *req.Divisor
	}

	now := time.Now()
	pricingType := domain.PricingType{
		PricingTypeID: uuid.NewString(),
		Code:          req.Code,
		ComputeBy:     domain.ComputeBasis(req.ComputeBy),
		PriceUnit:     req.PriceUnit,
		Divisor:       divisor,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.pricingTypeRepo.SavePricingType(ctx, pricingType); err != nil {
		return nil, fmt.Errorf("failed to create pricing type %s: %w", req.Code, err)
	}
	return &pricingType, nil
}

func (s *pricingService) GetPricingTypeByID(ctx context.Context, pricingTypeID string) (*domain.PricingType, error) {
	pricingType, err := s.pricingTypeRepo.FindPricingTypeByID(ctx, pricingTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pricing type %s: %w", pricingTypeID, err)
	}
	return pricingType, nil
}

func (s *pricingService) ListPricingTypes(ctx context.Context) ([]domain.PricingType, error) {
	pricingTypes, err := s.pricingTypeRepo.ListPricingTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing types: %w", err)
	}
	if pricingTypes == nil {
		return []domain.PricingType{}, nil
	}
	return pricingTypes, nil
}

func (s *pricingService) CreatePriceRule(ctx context.Context, req dto.CreatePriceRuleRequest, creatorUserID string) (*domain.PriceRule, error) {
	if req.UnitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: unit price must be positive", apperrors.ErrValidation)
	}
	if _, err := s.pricingTypeRepo.FindPricingTypeByID(ctx, req.PricingTypeID); err != nil {
		return nil, fmt.Errorf("%w: pricing type %s not found", apperrors.ErrValidation, req.PricingTypeID)
	}

	now := time.Now()
	rule := domain.PriceRule{
		PriceRuleID:      uuid.NewString(),
		SellerCompanyID:  req.SellerCompanyID,
		BuyerCompanyID:   req.BuyerCompanyID,
		MaterialID:       req.MaterialID,
		PricingTypeID:    req.PricingTypeID,
		CurrencyCode:     req.CurrencyCode,
		DeliveryMethodID: req.DeliveryMethodID,
		UnitPrice:        req.UnitPrice,
		IsActive:         true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.priceRuleRepo.SavePriceRule(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create price rule: %w", err)
	}
	return &rule, nil
}

func (s *pricingService) DeactivatePriceRule(ctx context.Context, priceRuleID string, updaterUserID string) error {
	if err := s.priceRuleRepo.DeactivatePriceRule(ctx, priceRuleID, updaterUserID); err != nil {
		return fmt.Errorf("failed to deactivate price rule %s: %w", priceRuleID, err)
	}
	return nil
}

// FindBestPrice walks the selection ladder:
//  1. full match including the delivery method, when one was given;
//  2. same parties/material/type/currency with no delivery method
//     constraint on the rule, preferring rules bound to no method;
//  3. otherwise any rule matching the rest of the key.
func (s *pricingService) FindBestPrice(ctx context.Context, query dto.BestPriceQuery) (*domain.PriceRule, error) {
	base := portsrepo.PriceRuleFilter{
		SellerCompanyID: &query.SellerCompanyID,
		BuyerCompanyID:  &query.BuyerCompanyID,
		MaterialID:      &query.MaterialID,
		PricingTypeID:   &query.PricingTypeID,
		CurrencyCode:    &query.CurrencyCode,
		OnlyActive:      true,
	}

	if query.DeliveryMethodID != nil {
		exact := base
		exact.DeliveryMethodID = query.DeliveryMethodID
		rules, err := s.priceRuleRepo.ListPriceRules(ctx, exact)
		if err != nil {
			return nil, fmt.Errorf("failed to search price rules: %w", err)
		}
		if len(rules) > 0 {
			return &rules[0], nil
		}
	}

	rules, err := s.priceRuleRepo.ListPriceRules(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("failed to search price rules: %w", err)
	}
	for i := range rules {
		if rules[i].DeliveryMethodID == nil {
			return &rules[i], nil
		}
	}
	if len(rules) > 0 {
		return &rules[0], nil
	}

	return nil, fmt.Errorf("no price rule matches: %w", apperrors.ErrNotFound)
}

// CalculateLineTotal computes a line total from the pricing type formula,
// base(computeBy)/divisor * unitPrice, falling back to the legacy code table
// when the type carries no usable formula.
func (s *pricingService) CalculateLineTotal(ctx context.Context, pricingTypeID string, quantity, netKg, grossKg, unitPrice decimal.Decimal) (decimal.Decimal, error) {
	pricingType, err := s.pricingTypeRepo.FindPricingTypeByID(ctx, pricingTypeID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load pricing type %s: %w", pricingTypeID, err)
	}

	if pricingType.ComputeBy != "" {
		var base decimal.Decimal
		switch pricingType.ComputeBy {
		case domain.ComputeByQuantity:
			base = quantity
		case domain.ComputeByNet:
			base = netKg
		case domain.ComputeByGross:
			base = grossKg
		default:
			return decimal.Zero, fmt.Errorf("%w: unknown compute basis %q", apperrors.ErrValidation, pricingType.ComputeBy)
		}
		divisor := pricingType.Divisor
		if divisor.IsZero() {
			divisor = decimal.NewFromInt(1)
		}
		return base.Div(divisor).Mul(unitPrice), nil
	}

	return legacyLineTotal(pricingType.Code, quantity, netKg, grossKg, unitPrice), nil
}

// legacyLineTotal is the pre-formula fallback keyed on the pricing type
// code. Unknown codes price by quantity.
func legacyLineTotal(code string, quantity, netKg, grossKg, unitPrice decimal.Decimal) decimal.Decimal {
	switch strings.ToUpper(code) {
	case "UNIT", "PCS", "PIECE":
		return quantity.Mul(unitPrice)
	case "KG", "KILO", "KG_NET":
		return netKg.Mul(unitPrice)
	case "KG_GROSS", "GROSS", "BRUT":
		return grossKg.Mul(unitPrice)
	case "TON", "T", "MT", "TON_NET":
		return netKg.Div(oneThousand).Mul(unitPrice)
	case "TON_GROSS":
		return grossKg.Div(oneThousand).Mul(unitPrice)
	default:
		return quantity.Mul(unitPrice)
	}
}
