package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mdjurovic/contract_rates_app/internal/core/domain"
	portssvc "github.com/mdjurovic/contract_rates_app/internal/core/ports/services"
	"github.com/mdjurovic/contract_rates_app/internal/dto"
	"github.com/mdjurovic/contract_rates_app/internal/handlers"
)

// --- Mock RateSyncService ---
type MockRateSyncService struct {
	mock.Mock
}

func (m *MockRateSyncService) SyncRates(ctx context.Context, start time.Time, end *time.Time) domain.SyncResult {
	args := m.Called(ctx, start, end)
	return args.Get(0).(domain.SyncResult)
}

func (m *MockRateSyncService) StatusForToday(ctx context.Context) (domain.SyncStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SyncStatus), args.Error(1)
}

func (m *MockRateSyncService) ListRates(ctx context.Context, currencyFrom *string, from, to *time.Time) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyFrom, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

var _ portssvc.RateSyncSvcFacade = (*MockRateSyncService)(nil)

// --- Test Suite ---
type RatesHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockRateSyncService
}

func (suite *RatesHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidations())

	suite.router = gin.New()
	suite.mockService = new(MockRateSyncService)

	noLimit := func(c *gin.Context) { c.Next() }
	v1 := suite.router.Group("/api/v1")
	handlers.RegisterRatesRoutes(v1, suite.mockService, noLimit)
}

func (suite *RatesHandlerTestSuite) perform(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RatesHandlerTestSuite) TestLoadRates_Success() {
	date := time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)
	suite.mockService.On("SyncRates", mock.Anything, date, (*time.Time)(nil)).Return(domain.SyncResult{
		Status:   domain.SyncStatusSuccess,
		Message:  "Rates successfully entered for 2 currency entries.",
		Inserted: []string{"USD", "EUR"},
	}).Once()

	w := suite.perform(http.MethodPost, "/api/v1/rates/load?date=2025-01-09")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RateSyncResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("success", resp.Status)
	suite.Equal([]string{"USD", "EUR"}, resp.Inserted)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *RatesHandlerTestSuite) TestLoadRates_SyncFailureStillHTTP200() {
	date := time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)
	suite.mockService.On("SyncRates", mock.Anything, date, (*time.Time)(nil)).Return(domain.SyncResult{
		Status:  domain.SyncStatusError,
		Message: "Error 500 for 09.01.2025.",
		Detail:  "upstream down",
	}).Once()

	w := suite.perform(http.MethodPost, "/api/v1/rates/load?date=2025-01-09")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RateSyncResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("error", resp.Status)
}

func (suite *RatesHandlerTestSuite) TestLoadRates_MissingDate() {
	w := suite.perform(http.MethodPost, "/api/v1/rates/load")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "SyncRates", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RatesHandlerTestSuite) TestLoadRates_MalformedDate() {
	w := suite.perform(http.MethodPost, "/api/v1/rates/load?date=09.01.2025")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "SyncRates", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RatesHandlerTestSuite) TestLoadRatesRange_Success() {
	start := time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)
	suite.mockService.On("SyncRates", mock.Anything, start, &end).Return(domain.SyncResult{
		Status:  domain.SyncStatusSuccess,
		Message: "Rates successfully entered for 6 currency entries.",
	}).Once()

	w := suite.perform(http.MethodPost, "/api/v1/rates/load-range?start=2025-01-07&end=2025-01-09")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *RatesHandlerTestSuite) TestLoadRatesRange_EndBeforeStart() {
	w := suite.perform(http.MethodPost, "/api/v1/rates/load-range?start=2025-01-09&end=2025-01-07")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "SyncRates", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RatesHandlerTestSuite) TestSyncStatus() {
	suite.mockService.On("StatusForToday", mock.Anything).Return(domain.SyncStatus{
		Status:  domain.DayStatusComplete,
		Message: "Rates for today's date are already registered.",
		Detail:  "2025-01-10",
	}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/rates/status")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SyncStatusResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("complete", resp.Status)
	suite.Equal("2025-01-10", resp.Detail)
}

func (suite *RatesHandlerTestSuite) TestListRates_WithFilters() {
	currency := "USD"
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.mockService.On("ListRates", mock.Anything, &currency, &from, (*time.Time)(nil)).Return([]domain.ExchangeRate{
		{CurrencyFrom: "USD", CurrencyTo: "RSD", RateDate: from},
	}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/rates?currency=USD&from=2025-01-01")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("USD", resp[0].CurrencyFrom)
	suite.Equal("2025-01-01", resp[0].RateDate)
}

func (suite *RatesHandlerTestSuite) TestListRates_InvalidCurrencyFilter() {
	w := suite.perform(http.MethodGet, "/api/v1/rates?currency=DOLLARS")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListRates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRatesHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RatesHandlerTestSuite))
}
