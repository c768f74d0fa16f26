package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/logiport/logiport_backend/internal/apperrors"
	"github.com/logiport/logiport_backend/internal/core/domain"
	portssvc "github.com/logiport/logiport_backend/internal/core/ports/services"
	"github.com/logiport/logiport_backend/internal/dto"
	"github.com/logiport/logiport_backend/internal/utils"
	"github.com/logiport/logiport_backend/internal/utils/tafqit"
)

// documentService aggregates transaction data into the language-resolved
// context a document renderer consumes. The amount-in-words line comes from
// the tafqit speller in the requested language.
type documentService struct {
	transactionSvc portssvc.TransactionReaderSvc
	currencySvc    portssvc.CurrencyReaderSvc
	pricingSvc     portssvc.PricingReaderSvc
	numberingSvc   portssvc.NumberingSvcFacade
}

// NewDocumentService creates a new document service.
func NewDocumentService(
	transactionSvc portssvc.TransactionReaderSvc,
	currencySvc portssvc.CurrencyReaderSvc,
	pricingSvc portssvc.PricingReaderSvc,
	numberingSvc portssvc.NumberingSvcFacade,
) portssvc.DocumentSvcFacade {
	return &documentService{
		transactionSvc: transactionSvc,
		currencySvc:    currencySvc,
		pricingSvc:     pricingSvc,
		numberingSvc:   numberingSvc,
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

func (s *documentService) BuildContext(ctx context.Context, transactionID string, req dto.BuildDocumentRequest) (*dto.DocumentContextResponse, error) {
	lang := tafqit.ParseLanguage(req.Language)

	txn, err := s.transactionSvc.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %s for document: %w", transactionID, err)
	}
	if len(txn.Items) == 0 {
		return nil, fmt.Errorf("%w: transaction %s has no items to document", apperrors.ErrValidation, transactionID)
	}

	currencyName := txn.CurrencyCode
	currencySymbol := ""
	precision := 2
	currency, err := s.currencySvc.GetCurrencyByCode(ctx, txn.CurrencyCode)
	switch {
	case err == nil:
		currencyName = currency.NameFor(string(lang))
		currencySymbol = currency.Symbol
		precision = currency.Precision
	case errors.Is(err, apperrors.ErrNotFound):
		// Unregistered currency: the code itself serves as the name.
	default:
		return nil, fmt.Errorf("failed to load currency %s for document: %w", txn.CurrencyCode, err)
	}

	lines, err := s.buildLines(ctx, txn.Items)
	if err != nil {
		return nil, err
	}

	prefix := s.numberingSvc.PrefixForDocCode(req.DocumentCode)

	return &dto.DocumentContextResponse{
		DocumentCode:    req.DocumentCode,
		Reference:       prefix + "-" + txn.Number,
		Language:        string(lang),
		TransactionID:   txn.TransactionID,
		Number:          txn.Number,
		Kind:            string(txn.Kind),
		SellerCompanyID: txn.SellerCompanyID,
		BuyerCompanyID:  txn.BuyerCompanyID,
		TransactionDate: txn.TransactionDate,
		CurrencyCode:    txn.CurrencyCode,
		CurrencyName:    currencyName,
		CurrencySymbol:  currencySymbol,
		Lines:           lines,
		TotalQuantity:   txn.Totals.Count,
		TotalGrossKg:    txn.Totals.GrossKg,
		TotalNetKg:      txn.Totals.NetKg,
		TotalValue:      txn.Totals.Value,
		TotalValueText:  utils.FormatWithPrecision(txn.Totals.Value, precision),
		AmountInWords:   tafqit.AmountInWords(txn.Totals.Value, txn.CurrencyCode, lang),
		GeneratedAt:     time.Now(),
	}, nil
}

// buildLines maps goods lines into document lines, resolving each pricing
// type once for its price unit label.
func (s *documentService) buildLines(ctx context.Context, items []domain.TransactionItem) ([]dto.DocumentLineContext, error) {
	priceUnits := make(map[string]string)
	lines := make([]dto.DocumentLineContext, len(items))
	for i, item := range items {
		unit, ok := priceUnits[item.PricingTypeID]
		if !ok {
			pricingType, err := s.pricingSvc.GetPricingTypeByID(ctx, item.PricingTypeID)
			switch {
			case err == nil:
				unit = pricingType.PriceUnit
			case errors.Is(err, apperrors.ErrNotFound):
				unit = ""
			default:
				return nil, fmt.Errorf("failed to load pricing type %s for document: %w", item.PricingTypeID, err)
			}
			priceUnits[item.PricingTypeID] = unit
		}

		lines[i] = dto.DocumentLineContext{
			Position:    i + 1,
			MaterialID:  item.MaterialID,
			Description: item.Description,
			Quantity:    item.Quantity,
			GrossKg:     item.GrossKg,
			NetKg:       item.NetKg,
			UnitPrice:   item.UnitPrice,
			PriceUnit:   unit,
			LineTotal:   item.LineTotal,
		}
	}
	return lines, nil
}
