package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/logiport/logiport_backend/internal/apperrors"
	"github.com/logiport/logiport_backend/internal/core/domain"
	portsrepo "github.com/logiport/logiport_backend/internal/core/ports/repositories"
	portssvc "github.com/logiport/logiport_backend/internal/core/ports/services"
	"github.com/logiport/logiport_backend/internal/dto"
	"github.com/logiport/logiport_backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const defaultTransactionPageSize = 50

// transactionService manages trade transactions: item validation, line
// total computation, aggregate totals and the lifecycle status machine.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	currencySvc     portssvc.CurrencyReaderSvc
	pricingSvc      portssvc.PricingSvcFacade
	numberingSvc    portssvc.NumberingSvcFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	currencySvc portssvc.CurrencyReaderSvc,
	pricingSvc portssvc.PricingSvcFacade,
	numberingSvc portssvc.NumberingSvcFacade,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		currencySvc:     currencySvc,
		pricingSvc:      pricingSvc,
		numberingSvc:    numberingSvc,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// buildItems validates the requested goods lines and materializes domain
// items, computing each missing line total from the line's pricing type.
func (s *transactionService) buildItems(ctx context.Context, transactionID string, reqItems []dto.CreateTransactionItemRequest) ([]domain.TransactionItem, error) {
	items := make([]domain.TransactionItem, 0, len(reqItems))
	for i, reqItem := range reqItems {
		if reqItem.Quantity.IsNegative() || reqItem.NetKg.IsNegative() || reqItem.GrossKg.IsNegative() || reqItem.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: item %d has negative measures", apperrors.ErrValidation, i)
		}

		var lineTotal decimal.Decimal
		if reqItem.LineTotal != nil {
			lineTotal = *reqItem.LineTotal
		} else {
			computed, err := s.pricingSvc.CalculateLineTotal(ctx, reqItem.PricingTypeID, reqItem.Quantity, reqItem.NetKg, reqItem.GrossKg, reqItem.UnitPrice)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("%w: item %d references unknown pricing type %s", apperrors.ErrValidation, i, reqItem.PricingTypeID)
				}
				return nil, err
			}
			lineTotal = computed
		}

		items = append(items, domain.TransactionItem{
			ItemID:        uuid.NewString(),
			TransactionID: transactionID,
			MaterialID:    reqItem.MaterialID,
			Description:   reqItem.Description,
			Quantity:      reqItem.Quantity,
			GrossKg:       reqItem.GrossKg,
			NetKg:         reqItem.NetKg,
			UnitPrice:     reqItem.UnitPrice,
			LineTotal:     lineTotal,
			PricingTypeID: reqItem.PricingTypeID,
			CurrencyCode:  reqItem.CurrencyCode,
		})
	}
	return items, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	if _, err := s.currencySvc.GetCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %s is not registered", apperrors.ErrValidation, req.CurrencyCode)
		}
		return nil, fmt.Errorf("failed to validate currency %s: %w", req.CurrencyCode, err)
	}

	number, err := s.numberingSvc.NextTransactionNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assign transaction number: %w", err)
	}

	transactionID := uuid.NewString()
	items, err := s.buildItems(ctx, transactionID, req.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   transactionID,
		Number:          number,
		Kind:            domain.TransactionKind(req.Kind),
		SellerCompanyID: req.SellerCompanyID,
		BuyerCompanyID:  req.BuyerCompanyID,
		CurrencyCode:    req.CurrencyCode,
		Status:          domain.StatusDraft,
		TransactionDate: req.TransactionDate,
		Notes:           req.Notes,
		Items:           items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	txn.RecalculateTotals()

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		// A concurrent create can win the race for the same number. Fetch a
		// fresh number once and retry before giving up.
		if !errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("failed to save transaction %s: %w", number, err)
		}
		number, err = s.numberingSvc.NextTransactionNumber(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to reassign transaction number: %w", err)
		}
		txn.Number = number
		if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
			return nil, fmt.Errorf("failed to save transaction %s: %w", number, err)
		}
	}
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, req dto.ListTransactionsRequest) (*dto.ListTransactionsResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}

	var afterDate, afterCreatedAt time.Time
	if req.NextToken != "" {
		decodedDate, decodedCreatedAt, err := pagination.DecodeToken(req.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		afterDate, afterCreatedAt = decodedDate, decodedCreatedAt
	}

	var status *domain.TransactionStatus
	if req.Status != "" {
		st := domain.TransactionStatus(req.Status)
		status = &st
	}

	txns, err := s.transactionRepo.ListTransactions(ctx, status, afterDate, afterCreatedAt, limit+1)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	resp := &dto.ListTransactionsResponse{}
	hasMore := len(txns) > limit
	if hasMore {
		txns = txns[:limit]
	}
	resp.Transactions = make([]dto.TransactionResponse, len(txns))
	for i := range txns {
		resp.Transactions[i] = dto.ToTransactionResponse(&txns[i])
	}
	if hasMore {
		last := txns[len(txns)-1]
		resp.NextToken = pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
	}
	return resp, nil
}

func (s *transactionService) ReplaceItems(ctx context.Context, transactionID string, req dto.UpdateTransactionItemsRequest, updaterUserID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %s: %w", transactionID, err)
	}
	if txn.Status != domain.StatusDraft && txn.Status != domain.StatusActive {
		return nil, fmt.Errorf("%w: items cannot be edited in status %s", apperrors.ErrValidation, txn.Status)
	}

	items, err := s.buildItems(ctx, transactionID, req.Items)
	if err != nil {
		return nil, err
	}

	txn.Items = items
	txn.RecalculateTotals()
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = updaterUserID

	if err := s.transactionRepo.SaveTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) ChangeStatus(ctx context.Context, transactionID string, next domain.TransactionStatus, updaterUserID string) (*domain.Transaction, error) {
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: invalid status %q", apperrors.ErrValidation, next)
	}

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %s: %w", transactionID, err)
	}

	current := txn.Status
	if current == "" {
		current = domain.StatusActive
	}
	if !current.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: transition %s -> %s not allowed", apperrors.ErrValidation, current, next)
	}

	if err := s.transactionRepo.UpdateTransactionStatus(ctx, transactionID, next, updaterUserID); err != nil {
		return nil, fmt.Errorf("failed to update status of transaction %s: %w", transactionID, err)
	}

	txn.Status = next
	txn.LastUpdatedBy = updaterUserID
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, deleterUserID string) error {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("failed to load transaction %s: %w", transactionID, err)
	}
	if txn.Status != domain.StatusDraft {
		return fmt.Errorf("%w: only draft transactions can be deleted", apperrors.ErrValidation)
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	// Release the freed number so the next create reuses it.
	if _, err := s.numberingSvc.SyncLastNumber(ctx); err != nil {
		return fmt.Errorf("transaction %s deleted but number sync failed: %w", transactionID, err)
	}
	return nil
}
