package services_test

import (
	"context"
	"testing"

	portssvc "github.com/logiport/logiport_backend/internal/core/ports/services"
	"github.com/logiport/logiport_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock NumberingRepository ---
type MockNumberingRepository struct {
	mock.Mock
}

func (m *MockNumberingRepository) GetLastNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNumberingRepository) SaveLastNumber(ctx context.Context, n int64) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNumberingRepository) MaxAssignedNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNumberingRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

// --- Test Suite ---
type NumberingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockNumberingRepository
	service  portssvc.NumberingSvcFacade
}

func (suite *NumberingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockNumberingRepository)
	suite.service = services.NewNumberingService(suite.mockRepo, "")
}

func (suite *NumberingServiceTestSuite) TestNextTransactionNumber_CounterAhead() {
	ctx := context.Background()
	suite.mockRepo.On("GetLastNumber", ctx).Return(int64(41), nil).Once()
	suite.mockRepo.On("MaxAssignedNumber", ctx).Return(int64(30), nil).Once()
	suite.mockRepo.On("NumberExists", ctx, "42").Return(false, nil).Once()
	suite.mockRepo.On("SaveLastNumber", ctx, int64(42)).Return(nil).Once()

	number, err := suite.service.NextTransactionNumber(ctx)

	suite.Require().NoError(err)
	suite.Equal("42", number)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NumberingServiceTestSuite) TestNextTransactionNumber_AssignedAheadOfCounter() {
	ctx := context.Background()
	// A row was inserted out of band; the counter must not reissue 100.
	suite.mockRepo.On("GetLastNumber", ctx).Return(int64(10), nil).Once()
	suite.mockRepo.On("MaxAssignedNumber", ctx).Return(int64(100), nil).Once()
	suite.mockRepo.On("NumberExists", ctx, "101").Return(false, nil).Once()
	suite.mockRepo.On("SaveLastNumber", ctx, int64(101)).Return(nil).Once()

	number, err := suite.service.NextTransactionNumber(ctx)

	suite.Require().NoError(err)
	suite.Equal("101", number)
}

func (suite *NumberingServiceTestSuite) TestNextTransactionNumber_ProbesPastLiveNumbers() {
	ctx := context.Background()
	suite.mockRepo.On("GetLastNumber", ctx).Return(int64(5), nil).Once()
	suite.mockRepo.On("MaxAssignedNumber", ctx).Return(int64(5), nil).Once()
	suite.mockRepo.On("NumberExists", ctx, "6").Return(true, nil).Once()
	suite.mockRepo.On("NumberExists", ctx, "7").Return(true, nil).Once()
	suite.mockRepo.On("NumberExists", ctx, "8").Return(false, nil).Once()
	suite.mockRepo.On("SaveLastNumber", ctx, int64(8)).Return(nil).Once()

	number, err := suite.service.NextTransactionNumber(ctx)

	suite.Require().NoError(err)
	suite.Equal("8", number)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NumberingServiceTestSuite) TestNextTransactionNumber_WithPrefix() {
	ctx := context.Background()
	prefixed := services.NewNumberingService(suite.mockRepo, "T")
	suite.mockRepo.On("GetLastNumber", ctx).Return(int64(0), nil).Once()
	suite.mockRepo.On("MaxAssignedNumber", ctx).Return(int64(0), nil).Once()
	suite.mockRepo.On("NumberExists", ctx, "T1").Return(false, nil).Once()
	suite.mockRepo.On("SaveLastNumber", ctx, int64(1)).Return(nil).Once()

	number, err := prefixed.NextTransactionNumber(ctx)

	suite.Require().NoError(err)
	suite.Equal("T1", number)
}

func (suite *NumberingServiceTestSuite) TestSyncLastNumber_ReleasesFreedNumbers() {
	ctx := context.Background()
	// Highest remaining row is 7; the counter drops back so 8+ are reused.
	suite.mockRepo.On("MaxAssignedNumber", ctx).Return(int64(7), nil).Once()
	suite.mockRepo.On("SaveLastNumber", ctx, int64(7)).Return(nil).Once()

	n, err := suite.service.SyncLastNumber(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(7), n)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NumberingServiceTestSuite) TestPrefixForDocCode() {
	cases := map[string]string{
		"invoice":                    "INV",
		"invoice.proforma":           "INV-PRO",
		"invoice.foreign.commercial": "INV-COM",
		"packing_list":               "PKL",
		"form_a":                     "FORMA",
		"form.a":                     "FORMA",
		"cmr":                        "CMR",
		"some.custom.waybill":        "WAYBIL", // derived, capped at 6
	}
	for code, want := range cases {
		suite.Equal(want, suite.service.PrefixForDocCode(code), "code %s", code)
	}
}

func TestNumberingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NumberingServiceTestSuite))
}
