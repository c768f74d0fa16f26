package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/logiport/logiport_backend/internal/apperrors"
	"github.com/logiport/logiport_backend/internal/core/domain"
	portssvc "github.com/logiport/logiport_backend/internal/core/ports/services"
	"github.com/logiport/logiport_backend/internal/core/services"
	"github.com/logiport/logiport_backend/internal/dto"
	"github.com/logiport/logiport_backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, status *domain.TransactionStatus, afterDate, afterCreatedAt time.Time, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, status, afterDate, afterCreatedAt, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, updaterUserID string) error {
	args := m.Called(ctx, transactionID, status, updaterUserID)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock CurrencyReaderSvc ---
type MockCurrencyReaderSvc struct {
	mock.Mock
}

func (m *MockCurrencyReaderSvc) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyReaderSvc) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock PricingSvcFacade ---
type MockPricingSvc struct {
	mock.Mock
}

func (m *MockPricingSvc) ListPricingTypes(ctx context.Context) ([]domain.PricingType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricingType), args.Error(1)
}

func (m *MockPricingSvc) GetPricingTypeByID(ctx context.Context, pricingTypeID string) (*domain.PricingType, error) {
	args := m.Called(ctx, pricingTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingType), args.Error(1)
}

func (m *MockPricingSvc) FindBestPrice(ctx context.Context, query dto.BestPriceQuery) (*domain.PriceRule, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceRule), args.Error(1)
}

func (m *MockPricingSvc) CreatePricingType(ctx context.Context, req dto.CreatePricingTypeRequest, creatorUserID string) (*domain.PricingType, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingType), args.Error(1)
}

func (m *MockPricingSvc) CreatePriceRule(ctx context.Context, req dto.CreatePriceRuleRequest, creatorUserID string) (*domain.PriceRule, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceRule), args.Error(1)
}

func (m *MockPricingSvc) DeactivatePriceRule(ctx context.Context, priceRuleID string, updaterUserID string) error {
	args := m.Called(ctx, priceRuleID, updaterUserID)
	return args.Error(0)
}

func (m *MockPricingSvc) CalculateLineTotal(ctx context.Context, pricingTypeID string, quantity, netKg, grossKg, unitPrice decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, pricingTypeID, quantity, netKg, grossKg, unitPrice)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock NumberingSvcFacade ---
type MockNumberingSvc struct {
	mock.Mock
}

func (m *MockNumberingSvc) NextTransactionNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockNumberingSvc) SyncLastNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNumberingSvc) PrefixForDocCode(docCode string) string {
	args := m.Called(docCode)
	return args.String(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockTransactionRepository
	mockCurrency  *MockCurrencyReaderSvc
	mockPricing   *MockPricingSvc
	mockNumbering *MockNumberingSvc
	service       portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockCurrency = new(MockCurrencyReaderSvc)
	suite.mockPricing = new(MockPricingSvc)
	suite.mockNumbering = new(MockNumberingSvc)
	suite.service = services.NewTransactionService(suite.mockRepo, suite.mockCurrency, suite.mockPricing, suite.mockNumbering)
}

func (suite *TransactionServiceTestSuite) createRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Kind:            "EXPORT",
		SellerCompanyID: "seller-1",
		BuyerCompanyID:  "buyer-1",
		CurrencyCode:    "USD",
		TransactionDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Items: []dto.CreateTransactionItemRequest{
			{
				MaterialID:    "mat-1",
				Quantity:      decimal.NewFromInt(4),
				NetKg:         decimal.NewFromInt(400),
				GrossKg:       decimal.NewFromInt(420),
				UnitPrice:     decimal.NewFromInt(25),
				PricingTypeID: "pt-1",
				CurrencyCode:  "USD",
			},
		},
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := suite.createRequest()

	suite.mockCurrency.On("GetCurrencyByCode", ctx, "USD").Return(&domain.Currency{CurrencyCode: "USD"}, nil).Once()
	suite.mockNumbering.On("NextTransactionNumber", ctx).Return("17", nil).Once()
	suite.mockPricing.On("CalculateLineTotal", ctx, "pt-1",
		req.Items[0].Quantity, req.Items[0].NetKg, req.Items[0].GrossKg, req.Items[0].UnitPrice).
		Return(decimal.NewFromInt(100), nil).Once()

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Number == "17" &&
			txn.Status == domain.StatusDraft &&
			len(txn.Items) == 1 &&
			txn.Items[0].LineTotal.Equal(decimal.NewFromInt(100)) &&
			txn.Totals.Value.Equal(decimal.NewFromInt(100)) &&
			txn.Totals.NetKg.Equal(decimal.NewFromInt(400)) &&
			txn.CreatedBy == creatorUserID
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal("17", txn.Number)
	suite.Equal(domain.StatusDraft, txn.Status)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockNumbering.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SuppliedLineTotalKept() {
	ctx := context.Background()
	req := suite.createRequest()
	supplied := decimal.NewFromInt(999)
	req.Items[0].LineTotal = &supplied

	suite.mockCurrency.On("GetCurrencyByCode", ctx, "USD").Return(&domain.Currency{CurrencyCode: "USD"}, nil).Once()
	suite.mockNumbering.On("NextTransactionNumber", ctx).Return("18", nil).Once()
	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Items[0].LineTotal.Equal(supplied)
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(txn.Totals.Value.Equal(supplied))
	suite.mockPricing.AssertNotCalled(suite.T(), "CalculateLineTotal", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnregisteredCurrencyRejected() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockCurrency.On("GetCurrencyByCode", ctx, "USD").Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockNumbering.AssertNotCalled(suite.T(), "NextTransactionNumber", mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NegativeMeasuresRejected() {
	ctx := context.Background()
	req := suite.createRequest()
	req.Items[0].NetKg = decimal.NewFromInt(-1)

	suite.mockCurrency.On("GetCurrencyByCode", ctx, "USD").Return(&domain.Currency{CurrencyCode: "USD"}, nil).Once()
	suite.mockNumbering.On("NextTransactionNumber", ctx).Return("19", nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestChangeStatus_AllowedTransition() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	txnID := uuid.NewString()
	stored := &domain.Transaction{TransactionID: txnID, Status: domain.StatusDraft}

	suite.mockRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateTransactionStatus", ctx, txnID, domain.StatusActive, updaterUserID).Return(nil).Once()

	txn, err := suite.service.ChangeStatus(ctx, txnID, domain.StatusActive, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusActive, txn.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestChangeStatus_ForbiddenTransition() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{TransactionID: txnID, Status: domain.StatusDraft}

	suite.mockRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()

	txn, err := suite.service.ChangeStatus(ctx, txnID, domain.StatusArchived, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransactionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestChangeStatus_ArchivedIsFinal() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{TransactionID: txnID, Status: domain.StatusArchived}

	suite.mockRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()

	txn, err := suite.service.ChangeStatus(ctx, txnID, domain.StatusActive, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
}

func (suite *TransactionServiceTestSuite) TestReplaceItems_ClosedTransactionRejected() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{TransactionID: txnID, Status: domain.StatusClosed}

	suite.mockRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()

	req := dto.UpdateTransactionItemsRequest{Items: suite.createRequest().Items}
	txn, err := suite.service.ReplaceItems(ctx, txnID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_DraftReleasesNumber() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{TransactionID: txnID, Status: domain.StatusDraft, Number: "9"}

	suite.mockRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()
	suite.mockRepo.On("DeleteTransaction", ctx, txnID).Return(nil).Once()
	suite.mockNumbering.On("SyncLastNumber", ctx).Return(int64(8), nil).Once()

	err := suite.service.DeleteTransaction(ctx, txnID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockNumbering.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NonDraftRejected() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{TransactionID: txnID, Status: domain.StatusActive}

	suite.mockRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()

	err := suite.service.DeleteTransaction(ctx, txnID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_Pagination() {
	ctx := context.Background()
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	// Repo returns limit+1 rows, signalling another page.
	rows := []domain.Transaction{
		{TransactionID: "a", TransactionDate: base.AddDate(0, 0, 2)},
		{TransactionID: "b", TransactionDate: base.AddDate(0, 0, 1)},
		{TransactionID: "c", TransactionDate: base},
	}
	suite.mockRepo.On("ListTransactions", ctx, (*domain.TransactionStatus)(nil), time.Time{}, time.Time{}, 3).Return(rows, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsRequest{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(resp.Transactions, 2)
	suite.NotEmpty(resp.NextToken)
	suite.Equal("a", resp.Transactions[0].TransactionID)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_SameDateAcrossPages() {
	ctx := context.Background()
	tradeDate := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	createdA := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	createdB := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	// Two transactions booked on the same business date; "a" was created
	// later so it sorts first.
	txnA := domain.Transaction{TransactionID: "a", TransactionDate: tradeDate, AuditFields: domain.AuditFields{CreatedAt: createdA}}
	txnB := domain.Transaction{TransactionID: "b", TransactionDate: tradeDate, AuditFields: domain.AuditFields{CreatedAt: createdB}}

	suite.mockRepo.On("ListTransactions", ctx, (*domain.TransactionStatus)(nil), time.Time{}, time.Time{}, 2).
		Return([]domain.Transaction{txnA, txnB}, nil).Once()

	page1, err := suite.service.ListTransactions(ctx, dto.ListTransactionsRequest{Limit: 1})
	suite.Require().NoError(err)
	suite.Require().Len(page1.Transactions, 1)
	suite.Equal("a", page1.Transactions[0].TransactionID)
	suite.Require().NotEmpty(page1.NextToken)

	// The token must carry the creation time so the next page can still
	// see "b", which shares the last row's transaction date.
	tokenDate, tokenCreatedAt, err := pagination.DecodeToken(page1.NextToken)
	suite.Require().NoError(err)
	suite.True(tokenDate.Equal(tradeDate))
	suite.True(tokenCreatedAt.Equal(createdA))

	suite.mockRepo.On("ListTransactions", ctx, (*domain.TransactionStatus)(nil), tokenDate, tokenCreatedAt, 2).
		Return([]domain.Transaction{txnB}, nil).Once()

	page2, err := suite.service.ListTransactions(ctx, dto.ListTransactionsRequest{Limit: 1, NextToken: page1.NextToken})
	suite.Require().NoError(err)
	suite.Require().Len(page2.Transactions, 1)
	suite.Equal("b", page2.Transactions[0].TransactionID)
	suite.Empty(page2.NextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RetriesOnNumberCollision() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockCurrency.On("GetCurrencyByCode", ctx, "USD").Return(&domain.Currency{CurrencyCode: "USD"}, nil).Once()
	suite.mockNumbering.On("NextTransactionNumber", ctx).Return("17", nil).Once()
	suite.mockNumbering.On("NextTransactionNumber", ctx).Return("18", nil).Once()
	suite.mockPricing.On("CalculateLineTotal", ctx, "pt-1",
		req.Items[0].Quantity, req.Items[0].NetKg, req.Items[0].GrossKg, req.Items[0].UnitPrice).
		Return(decimal.NewFromInt(100), nil).Once()

	// A concurrent create took number 17 first; the save is retried once
	// with a fresh number.
	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Number == "17"
	})).Return(apperrors.ErrDuplicate).Once()
	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Number == "18"
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("18", txn.Number)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockNumbering.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SecondCollisionFails() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockCurrency.On("GetCurrencyByCode", ctx, "USD").Return(&domain.Currency{CurrencyCode: "USD"}, nil).Once()
	suite.mockNumbering.On("NextTransactionNumber", ctx).Return("17", nil).Once()
	suite.mockNumbering.On("NextTransactionNumber", ctx).Return("18", nil).Once()
	suite.mockPricing.On("CalculateLineTotal", ctx, "pt-1",
		req.Items[0].Quantity, req.Items[0].NetKg, req.Items[0].GrossKg, req.Items[0].UnitPrice).
		Return(decimal.NewFromInt(100), nil).Once()
	suite.mockRepo.On("SaveTransaction", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Twice()

	txn, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(txn)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
