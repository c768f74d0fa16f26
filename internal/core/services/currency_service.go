package services

import (
	"context"
	"fmt"
	"time"

	"github.com/logiport/logiport_backend/internal/apperrors"
	"github.com/logiport/logiport_backend/internal/core/domain"
	portsrepo "github.com/logiport/logiport_backend/internal/core/ports/repositories"
	portssvc "github.com/logiport/logiport_backend/internal/core/ports/services"
	"github.com/logiport/logiport_backend/internal/dto"
)

const defaultCurrencyPrecision = 2

// currencyService manages the currency registry used on documents.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	now := time.Now()

	precision := defaultCurrencyPrecision
	if req.Precision != nil {
		precision = *req.Precision
	}

	currency := domain.Currency{
		CurrencyCode: req.CurrencyCode,
		Symbol:       req.Symbol,
		Precision:    precision,
		NameEN:       req.NameEN,
		NameAR:       req.NameAR,
		NameTR:       req.NameTR,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency %s: %w", req.CurrencyCode, err)
	}

	return &currency, nil
}

func (s *currencyService) UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, updaterUserID string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency %s for update: %w", currencyCode, err)
	}

	if req.Symbol != nil {
		currency.Symbol = *req.Symbol
	}
	if req.Precision != nil {
		currency.Precision = *req.Precision
	}
	if req.NameEN != nil {
		if *req.NameEN == "" {
			return nil, fmt.Errorf("%w: english name cannot be empty", apperrors.ErrValidation)
		}
		currency.NameEN = *req.NameEN
	}
	if req.NameAR != nil {
		currency.NameAR = *req.NameAR
	}
	if req.NameTR != nil {
		currency.NameTR = *req.NameTR
	}
	currency.LastUpdatedAt = time.Now()
	currency.LastUpdatedBy = updaterUserID

	if err := s.currencyRepo.UpdateCurrency(ctx, *currency); err != nil {
		return nil, fmt.Errorf("failed to update currency %s: %w", currencyCode, err)
	}

	return currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", currencyCode, err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
