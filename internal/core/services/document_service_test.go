package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/logiport/logiport_backend/internal/apperrors"
	"github.com/logiport/logiport_backend/internal/core/domain"
	portssvc "github.com/logiport/logiport_backend/internal/core/ports/services"
	"github.com/logiport/logiport_backend/internal/core/services"
	"github.com/logiport/logiport_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionReaderSvc ---
type MockTransactionReaderSvc struct {
	mock.Mock
}

func (m *MockTransactionReaderSvc) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionReaderSvc) ListTransactions(ctx context.Context, req dto.ListTransactionsRequest) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

// --- Test Suite ---
type DocumentServiceTestSuite struct {
	suite.Suite
	mockTxn       *MockTransactionReaderSvc
	mockCurrency  *MockCurrencyReaderSvc
	mockPricing   *MockPricingSvc
	mockNumbering *MockNumberingSvc
	service       portssvc.DocumentSvcFacade
}

func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.mockTxn = new(MockTransactionReaderSvc)
	suite.mockCurrency = new(MockCurrencyReaderSvc)
	suite.mockPricing = new(MockPricingSvc)
	suite.mockNumbering = new(MockNumberingSvc)
	suite.service = services.NewDocumentService(suite.mockTxn, suite.mockCurrency, suite.mockPricing, suite.mockNumbering)
}

func (suite *DocumentServiceTestSuite) storedTransaction() *domain.Transaction {
	return &domain.Transaction{
		TransactionID:   "txn-1",
		Number:          "260007",
		Kind:            domain.Export,
		SellerCompanyID: "seller-1",
		BuyerCompanyID:  "buyer-1",
		CurrencyCode:    "USD",
		Status:          domain.StatusActive,
		TransactionDate: time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		Items: []domain.TransactionItem{
			{
				ItemID:        "item-1",
				MaterialID:    "mat-1",
				Description:   "steel coils",
				Quantity:      decimal.NewFromInt(10),
				GrossKg:       decimal.NewFromInt(10500),
				NetKg:         decimal.NewFromInt(10000),
				UnitPrice:     decimal.NewFromInt(20),
				LineTotal:     decimal.NewFromInt(200),
				PricingTypeID: "pt-ton",
				CurrencyCode:  "USD",
			},
		},
		Totals: domain.TransactionTotals{
			Count:   decimal.NewFromInt(10),
			GrossKg: decimal.NewFromInt(10500),
			NetKg:   decimal.NewFromInt(10000),
			Value:   decimal.NewFromInt(200),
		},
	}
}

func (suite *DocumentServiceTestSuite) TestBuildContext_English() {
	ctx := context.Background()
	txn := suite.storedTransaction()

	suite.mockTxn.On("GetTransactionByID", ctx, "txn-1").Return(txn, nil).Once()
	suite.mockCurrency.On("GetCurrencyByCode", ctx, "USD").
		Return(&domain.Currency{CurrencyCode: "USD", Symbol: "$", NameEN: "US Dollar"}, nil).Once()
	suite.mockPricing.On("GetPricingTypeByID", ctx, "pt-ton").
		Return(&domain.PricingType{PricingTypeID: "pt-ton", PriceUnit: "USD/ton"}, nil).Once()
	suite.mockNumbering.On("PrefixForDocCode", "invoice.proforma").Return("INV-PRO").Once()

	res, err := suite.service.BuildContext(ctx, "txn-1", dto.BuildDocumentRequest{
		DocumentCode: "invoice.proforma",
		Language:     "en",
	})

	suite.Require().NoError(err)
	suite.Equal("INV-PRO-260007", res.Reference)
	suite.Equal("en", res.Language)
	suite.Equal("US Dollar", res.CurrencyName)
	suite.Equal("two hundred US dollars", res.AmountInWords)
	suite.Equal("200", res.TotalValueText)
	suite.Require().Len(res.Lines, 1)
	suite.Equal(1, res.Lines[0].Position)
	suite.Equal("USD/ton", res.Lines[0].PriceUnit)
	suite.mockTxn.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestBuildContext_ArabicWordsAndName() {
	ctx := context.Background()
	txn := suite.storedTransaction()
	txn.Totals.Value = decimal.RequireFromString("2000.50")

	suite.mockTxn.On("GetTransactionByID", ctx, "txn-1").Return(txn, nil).Once()
	suite.mockCurrency.On("GetCurrencyByCode", ctx, "USD").
		Return(&domain.Currency{CurrencyCode: "USD", Symbol: "$", NameEN: "US Dollar", NameAR: "دولار أمريكي"}, nil).Once()
	suite.mockPricing.On("GetPricingTypeByID", ctx, "pt-ton").
		Return(&domain.PricingType{PricingTypeID: "pt-ton", PriceUnit: "USD/ton"}, nil).Once()
	suite.mockNumbering.On("PrefixForDocCode", "invoice").Return("INV").Once()

	res, err := suite.service.BuildContext(ctx, "txn-1", dto.BuildDocumentRequest{
		DocumentCode: "invoice",
		Language:     "ar",
	})

	suite.Require().NoError(err)
	suite.Equal("دولار أمريكي", res.CurrencyName)
	suite.Equal("ألفان دولار أمريكي و خمسون سنت", res.AmountInWords)
}

func (suite *DocumentServiceTestSuite) TestBuildContext_UnregisteredCurrencyFallsBackToCode() {
	ctx := context.Background()
	txn := suite.storedTransaction()
	txn.CurrencyCode = "XXX"

	suite.mockTxn.On("GetTransactionByID", ctx, "txn-1").Return(txn, nil).Once()
	suite.mockCurrency.On("GetCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPricing.On("GetPricingTypeByID", ctx, "pt-ton").
		Return(&domain.PricingType{PricingTypeID: "pt-ton", PriceUnit: "USD/ton"}, nil).Once()
	suite.mockNumbering.On("PrefixForDocCode", "cmr").Return("CMR").Once()

	res, err := suite.service.BuildContext(ctx, "txn-1", dto.BuildDocumentRequest{
		DocumentCode: "cmr",
		Language:     "en",
	})

	suite.Require().NoError(err)
	suite.Equal("XXX", res.CurrencyName)
	suite.Empty(res.CurrencySymbol)
}

func (suite *DocumentServiceTestSuite) TestBuildContext_NoItemsRejected() {
	ctx := context.Background()
	txn := suite.storedTransaction()
	txn.Items = nil

	suite.mockTxn.On("GetTransactionByID", ctx, "txn-1").Return(txn, nil).Once()

	res, err := suite.service.BuildContext(ctx, "txn-1", dto.BuildDocumentRequest{DocumentCode: "invoice"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(res)
}

func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
