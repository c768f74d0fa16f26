package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/logiport/logiport_backend/internal/apperrors"
	"github.com/logiport/logiport_backend/internal/core/domain"
	portssvc "github.com/logiport/logiport_backend/internal/core/ports/services"
	"github.com/logiport/logiport_backend/internal/dto"
	"github.com/logiport/logiport_backend/internal/handlers"
	"github.com/logiport/logiport_backend/internal/middleware"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, req dto.ListTransactionsRequest) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ReplaceItems(ctx context.Context, transactionID string, req dto.UpdateTransactionItemsRequest, updaterUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ChangeStatus(ctx context.Context, transactionID string, next domain.TransactionStatus, updaterUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, next, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string, deleterUserID string) error {
	args := m.Called(ctx, transactionID, deleterUserID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	jwtSecret   string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "logiport-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockTransactionService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTransactionRoutes(v1, suite.mockService)
}

func sampleCreateRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Kind:            "EXPORT",
		SellerCompanyID: uuid.NewString(),
		BuyerCompanyID:  uuid.NewString(),
		CurrencyCode:    "USD",
		TransactionDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Items: []dto.CreateTransactionItemRequest{
			{
				MaterialID:    uuid.NewString(),
				Quantity:      decimal.NewFromInt(10),
				NetKg:         decimal.NewFromInt(2500),
				GrossKg:       decimal.NewFromInt(2600),
				UnitPrice:     decimal.NewFromInt(40),
				PricingTypeID: uuid.NewString(),
				CurrencyCode:  "USD",
			},
		},
	}
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	userID := uuid.NewString()
	req := sampleCreateRequest()

	expected := &domain.Transaction{
		TransactionID:   uuid.NewString(),
		Number:          "42",
		Kind:            domain.Export,
		SellerCompanyID: req.SellerCompanyID,
		BuyerCompanyID:  req.BuyerCompanyID,
		CurrencyCode:    "USD",
		Status:          domain.StatusDraft,
		TransactionDate: req.TransactionDate,
	}

	suite.mockService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest"), userID).
		Return(expected, nil).Once()

	body, err := json.Marshal(req)
	suite.Require().NoError(err)

	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, httpReq)

	suite.Equal(http.StatusCreated, recorder.Code)

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	suite.Equal(expected.TransactionID, resp.TransactionID)
	suite.Equal("42", resp.Number)
	suite.Equal("draft", resp.Status)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingItemsRejected() {
	userID := uuid.NewString()
	req := sampleCreateRequest()
	req.Items = nil

	body, err := json.Marshal(req)
	suite.Require().NoError(err)

	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, httpReq)

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction")
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	userID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockService.On("GetTransactionByID", mock.Anything, transactionID).
		Return(nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)).Once()

	httpReq, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/"+transactionID, nil)
	httpReq.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, httpReq)

	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestChangeStatus_ForbiddenTransitionConflicts() {
	userID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockService.On("ChangeStatus", mock.Anything, transactionID, domain.StatusArchived, userID).
		Return(nil, fmt.Errorf("cannot move from draft to archived: %w", apperrors.ErrForbidden)).Once()

	body, err := json.Marshal(dto.ChangeTransactionStatusRequest{Status: "archived"})
	suite.Require().NoError(err)

	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions/"+transactionID+"/status", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, httpReq)

	suite.Equal(http.StatusConflict, recorder.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NoContent() {
	userID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockService.On("DeleteTransaction", mock.Anything, transactionID, userID).
		Return(nil).Once()

	httpReq, _ := http.NewRequest(http.MethodDelete, "/api/v1/transactions/"+transactionID, nil)
	httpReq.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, httpReq)

	suite.Equal(http.StatusNoContent, recorder.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_MissingTokenUnauthorized() {
	httpReq, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, httpReq)

	suite.Equal(http.StatusUnauthorized, recorder.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions")
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
