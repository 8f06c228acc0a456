package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mdjurovic/contract_rates_app/internal/apperrors"
	"github.com/mdjurovic/contract_rates_app/internal/core/domain"
	"github.com/mdjurovic/contract_rates_app/internal/core/ports/ratesource"
	portssvc "github.com/mdjurovic/contract_rates_app/internal/core/ports/services"
	"github.com/mdjurovic/contract_rates_app/internal/core/services"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindRate(ctx context.Context, currencyFrom, currencyTo string, date time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyFrom, currencyTo, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) HasRatesForDate(ctx context.Context, date time.Time) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockExchangeRateRepository) ListRates(ctx context.Context, currencyFrom *string, from, to *time.Time) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyFrom, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveRates(ctx context.Context, rates []domain.ExchangeRate) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListActiveCurrencyCodes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchDaily(ctx context.Context, date time.Time) (*ratesource.DailyQuotes, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ratesource.DailyQuotes), args.Error(1)
}

// --- Test Suite ---
type RateSyncServiceTestSuite struct {
	suite.Suite
	mockRateRepo     *MockExchangeRateRepository
	mockCurrencyRepo *MockCurrencyRepository
	mockSource       *MockRateSource
	service          portssvc.RateSyncSvcFacade
	now              time.Time
}

func (suite *RateSyncServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockSource = new(MockRateSource)
	suite.now = time.Date(2025, 1, 10, 12, 30, 0, 0, time.UTC)
	suite.service = services.NewRateSyncService(
		suite.mockRateRepo,
		suite.mockCurrencyRepo,
		suite.mockSource,
		"RSD",
		services.WithClock(func() time.Time { return suite.now }),
	)
}

func (suite *RateSyncServiceTestSuite) date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func quotesFor(date time.Time, quotes map[string]string) *ratesource.DailyQuotes {
	return &ratesource.DailyQuotes{Date: date, Quotes: quotes}
}

// --- Bounds ---

func (suite *RateSyncServiceTestSuite) TestSyncRates_RejectsDateBeforeMinimum() {
	ctx := context.Background()

	result := suite.service.SyncRates(ctx, suite.date(2002, 5, 14), nil)

	suite.Equal(domain.SyncStatusError, result.Status)
	suite.Contains(result.Message, "15.05.2002")
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "ListActiveCurrencyCodes", mock.Anything)
	suite.mockSource.AssertNotCalled(suite.T(), "FetchDaily", mock.Anything, mock.Anything)
}

func (suite *RateSyncServiceTestSuite) TestSyncRates_AcceptsMinimumDate() {
	ctx := context.Background()
	date := suite.date(2002, 5, 15)

	suite.mockCurrencyRepo.On("ListActiveCurrencyCodes", ctx).Return([]string{"USD"}, nil).Once()
	suite.mockSource.On("FetchDaily", ctx, date).Return(quotesFor(date, map[string]string{}), nil).Once()

	result := suite.service.SyncRates(ctx, date, nil)

	suite.Equal(domain.SyncStatusInfo, result.Status)
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *RateSyncServiceTestSuite) TestSyncRates_RejectsFutureDate() {
	ctx := context.Background()

	result := suite.service.SyncRates(ctx, suite.date(2025, 1, 11), nil)

	suite.Equal(domain.SyncStatusError, result.Status)
	suite.Contains(result.Message, "10.01.2025")
	suite.mockSource.AssertNotCalled(suite.T(), "FetchDaily", mock.Anything, mock.Anything)
}

func (suite *RateSyncServiceTestSuite) TestSyncRates_RejectsRangeEndingInFuture() {
	ctx := context.Background()
	start := suite.date(2025, 1, 9)
	end := suite.date(2025, 1, 11)

	result := suite.service.SyncRates(ctx, start, &end)

	suite.Equal(domain.SyncStatusError, result.Status)
	suite.mockSource.AssertNotCalled(suite.T(), "FetchDaily", mock.Anything, mock.Anything)
}

// --- Reconciliation ---

func (suite *RateSyncServiceTestSuite) TestSyncRates_InsertsNewRates() {
	ctx := context.Background()
	date := suite.date(2025, 1, 9)

	suite.mockCurrencyRepo.On("ListActiveCurrencyCodes", ctx).Return([]string{"USD", "EUR"}, nil).Once()
	// provider keys are lowercase, values use a comma separator
	suite.mockSource.On("FetchDaily", ctx, date).Return(quotesFor(date, map[string]string{
		"usd": "117,5882",
		"eur": "117.1000",
	}), nil).Once()
	suite.mockRateRepo.On("FindRate", ctx, "USD", "RSD", date).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateRepo.On("FindRate", ctx, "EUR", "RSD", date).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateRepo.On("SaveRates", ctx, mock.MatchedBy(func(rates []domain.ExchangeRate) bool {
		return len(rates) == 2 &&
			rates[0].CurrencyFrom == "USD" && rates[0].Rate.Equal(decimal.RequireFromString("117.5882")) &&
			rates[1].CurrencyFrom == "EUR" && rates[1].Rate.Equal(decimal.RequireFromString("117.1")) &&
			rates[0].CurrencyTo == "RSD" && rates[0].RateDate.Equal(date)
	})).Return(nil).Once()

	result := suite.service.SyncRates(ctx, date, nil)

	suite.Equal(domain.SyncStatusSuccess, result.Status)
	suite.Contains(result.Message, "2 currency entries")
	suite.Equal([]string{"USD", "EUR"}, result.Inserted)
	suite.Empty(result.Updated)
	suite.Contains(result.Debug, "USD: Inserted | API=117.5882")
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateSyncServiceTestSuite) TestSyncRates_UpdatesChangedRate() {
	ctx := context.Background()
	date := suite.date(2025, 1, 9)
	stored := &domain.ExchangeRate{
		CurrencyFrom: "USD",
		CurrencyTo:   "RSD",
		RateDate:     date,
		Rate:         decimal.RequireFromString("117.5882"),
	}

	suite.mockCurrencyRepo.On("ListActiveCurrencyCodes", ctx).Return([]string{"USD"}, nil).Once()
	suite.mockSource.On("FetchDaily", ctx, date).Return(quotesFor(date, map[string]string{
		"USD": "117.6001",
	}), nil).Once()
	suite.mockRateRepo.On("FindRate", ctx, "USD", "RSD", date).Return(stored, nil).Once()
	suite.mockRateRepo.On("SaveRates", ctx, mock.MatchedBy(func(rates []domain.ExchangeRate) bool {
		return len(rates) == 1 && rates[0].Rate.Equal(decimal.RequireFromString("117.6001"))
	})).Return(nil).Once()

	result := suite.service.SyncRates(ctx, date, nil)

	suite.Equal(domain.SyncStatusSuccess, result.Status)
	suite.Equal([]string{"USD"}, result.Updated)
	suite.Empty(result.Inserted)
	suite.Contains(result.Debug, "USD: Updated | DB=117.5882, API=117.6001")
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateSyncServiceTestSuite) TestSyncRates_SkipsRateUnchangedAtFourDecimals() {
	ctx := context.Background()
	date := suite.date(2025, 1, 9)
	stored := &domain.ExchangeRate{
		CurrencyFrom: "USD",
		CurrencyTo:   "RSD",
		RateDate:     date,
		Rate:         decimal.RequireFromString("117.58824"),
	}

	suite.mockCurrencyRepo.On("ListActiveCurrencyCodes", ctx).Return([]string{"USD"}, nil).Once()
	// differs only past the fourth decimal place
	suite.mockSource.On("FetchDaily", ctx, date).Return(quotesFor(date, map[string]string{
		"USD": "117,58821",
	}), nil).Once()
	suite.mockRateRepo.On("FindRate", ctx, "USD", "RSD", date).Return(stored, nil).Once()

	result := suite.service.SyncRates(ctx, date, nil)

	suite.Equal(domain.SyncStatusInfo, result.Status)
	suite.Contains(result.Message, "already been entered")
	suite.Contains(result.Debug, "USD: Skipped (no change) | DB=117.5882, API=117.5882")
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveRates", mock.Anything, mock.Anything)
}

func (suite *RateSyncServiceTestSuite) TestSyncRates_SkipsCurrencyMissingFromQuotes() {
	ctx := context.Background()
	date := suite.date(2025, 1, 9)

	suite.mockCurrencyRepo.On("ListActiveCurrencyCodes", ctx).Return([]string{"USD", "CHF"}, nil).Once()
	suite.mockSource.On("FetchDaily", ctx, date).Return(quotesFor(date, map[string]string{
		"USD": "117.5882",
	}), nil).Once()
	suite.mockRateRepo.On("FindRate", ctx, "USD", "RSD", date).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateRepo.On("SaveRates", ctx, mock.MatchedBy(func(rates []domain.ExchangeRate) bool {
		return len(rates) == 1 && rates[0].CurrencyFrom == "USD"
	})).Return(nil).Once()

	result := suite.service.SyncRates(ctx, date, nil)

	suite.Equal(domain.SyncStatusSuccess, result.Status)
	suite.Equal([]string{"USD"}, result.Inserted)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRate", ctx, "CHF", "RSD", date)
}

func (suite *RateSyncServiceTestSuite) TestSyncRates_SkipsUnparseableQuote() {
	ctx := context.Background()
	date := suite.date(2025, 1, 9)

	suite.mockCurrencyRepo.On("ListActiveCurrencyCodes", ctx).Return([]string{"USD"}, nil).Once()
	suite.mockSource.On("FetchDaily", ctx, date).Return(quotesFor(date, map[string]string{
		"USD": "n/a",
	}), nil).Once()

	result := suite.service.SyncRates(ctx, date, nil)

	suite.Equal(domain.SyncStatusInfo, result.Status)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Range processing ---

func (suite *RateSyncServiceTestSuite) TestSyncRates_RangeAbortRetainsCommittedDates() {
	ctx := context.Background()
	d1 := suite.date(2025, 1, 7)
	d2 := suite.date(2025, 1, 8)
	d3 := suite.date(2025, 1, 9)

	suite.mockCurrencyRepo.On("ListActiveCurrencyCodes", ctx).Return([]string{"USD"}, nil).Once()
	suite.mockSource.On("FetchDaily", ctx, d1).Return(quotesFor(d1, map[string]string{"USD": "117.10"}), nil).Once()
	suite.mockSource.On("FetchDaily", ctx, d2).Return(quotesFor(d2, map[string]string{"USD": "117.20"}), nil).Once()
	suite.mockSource.On("FetchDaily", ctx, d3).Return(nil, &ratesource.TransportError{StatusCode: 500, Body: "upstream down"}).Once()
	suite.mockRateRepo.On("FindRate", ctx, "USD", "RSD", d1).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateRepo.On("FindRate", ctx, "USD", "RSD", d2).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateRepo.On("SaveRates", ctx, mock.MatchedBy(func(rates []domain.ExchangeRate) bool {
		return len(rates) == 1 && rates[0].RateDate.Equal(d1)
	})).Return(nil).Once()
	suite.mockRateRepo.On("SaveRates", ctx, mock.MatchedBy(func(rates []domain.ExchangeRate) bool {
		return len(rates) == 1 && rates[0].RateDate.Equal(d2)
	})).Return(nil).Once()

	end := d3
	result := suite.service.SyncRates(ctx, d1, &end)

	// the first two dates were committed before the abort
	suite.Equal(domain.SyncStatusError, result.Status)
	suite.Contains(result.Message, "Error 500 for 09.01.2025")
	suite.Equal("upstream down", result.Detail)
	suite.mockRateRepo.AssertExpectations(suite.T())
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *RateSyncServiceTestSuite) TestSyncRates_RangeProcessesDatesAscending() {
	ctx := context.Background()
	d1 := suite.date(2025, 1, 8)
	d2 := suite.date(2025, 1, 9)

	var fetched []time.Time
	suite.mockCurrencyRepo.On("ListActiveCurrencyCodes", ctx).Return([]string{"USD"}, nil).Once()
	suite.mockSource.On("FetchDaily", ctx, mock.AnythingOfType("time.Time")).Run(func(args mock.Arguments) {
		fetched = append(fetched, args.Get(1).(time.Time))
	}).Return(quotesFor(d1, map[string]string{}), nil).Twice()

	end := d2
	result := suite.service.SyncRates(ctx, d1, &end)

	suite.Equal(domain.SyncStatusInfo, result.Status)
	suite.Equal([]time.Time{d1, d2}, fetched)
}

// --- Provider failure mapping ---

func (suite *RateSyncServiceTestSuite) TestSyncRates_ProviderError() {
	ctx := context.Background()
	date := suite.date(2025, 1, 9)

	suite.mockCurrencyRepo.On("ListActiveCurrencyCodes", ctx).Return([]string{"USD"}, nil).Once()
	suite.mockSource.On("FetchDaily", ctx, date).Return(nil, &ratesource.ProviderError{Code: "2", Message: "invalid api key"}).Once()

	result := suite.service.SyncRates(ctx, date, nil)

	suite.Equal(domain.SyncStatusError, result.Status)
	suite.Contains(result.Message, "Provider error for 09.01.2025")
	suite.Contains(result.Message, "invalid api key")
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveRates", mock.Anything, mock.Anything)
}

func (suite *RateSyncServiceTestSuite) TestSyncRates_FormatError() {
	ctx := context.Background()
	date := suite.date(2025, 1, 9)

	suite.mockCurrencyRepo.On("ListActiveCurrencyCodes", ctx).Return([]string{"USD"}, nil).Once()
	suite.mockSource.On("FetchDaily", ctx, date).Return(nil, &ratesource.FormatError{Detail: "unexpected token"}).Once()

	result := suite.service.SyncRates(ctx, date, nil)

	suite.Equal(domain.SyncStatusError, result.Status)
	suite.Contains(result.Message, "does not contain the expected format")
	suite.Equal("unexpected token", result.Detail)
}

func (suite *RateSyncServiceTestSuite) TestSyncRates_CurrencyListError() {
	ctx := context.Background()
	date := suite.date(2025, 1, 9)

	suite.mockCurrencyRepo.On("ListActiveCurrencyCodes", ctx).Return(nil, assert.AnError).Once()

	result := suite.service.SyncRates(ctx, date, nil)

	suite.Equal(domain.SyncStatusError, result.Status)
	suite.mockSource.AssertNotCalled(suite.T(), "FetchDaily", mock.Anything, mock.Anything)
}

func (suite *RateSyncServiceTestSuite) TestSyncRates_PersistError() {
	ctx := context.Background()
	date := suite.date(2025, 1, 9)

	suite.mockCurrencyRepo.On("ListActiveCurrencyCodes", ctx).Return([]string{"USD"}, nil).Once()
	suite.mockSource.On("FetchDaily", ctx, date).Return(quotesFor(date, map[string]string{"USD": "117.5"}), nil).Once()
	suite.mockRateRepo.On("FindRate", ctx, "USD", "RSD", date).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateRepo.On("SaveRates", ctx, mock.Anything).Return(assert.AnError).Once()

	result := suite.service.SyncRates(ctx, date, nil)

	suite.Equal(domain.SyncStatusError, result.Status)
	suite.Contains(result.Message, "Failed to persist rates")
}

// --- Status check ---

func (suite *RateSyncServiceTestSuite) TestStatusForToday_Complete() {
	ctx := context.Background()
	today := suite.date(2025, 1, 10)

	suite.mockRateRepo.On("HasRatesForDate", ctx, today).Return(true, nil).Once()

	status, err := suite.service.StatusForToday(ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.DayStatusComplete, status.Status)
	suite.Equal("2025-01-10", status.Detail)
}

func (suite *RateSyncServiceTestSuite) TestStatusForToday_Missing() {
	ctx := context.Background()
	today := suite.date(2025, 1, 10)

	suite.mockRateRepo.On("HasRatesForDate", ctx, today).Return(false, nil).Once()

	status, err := suite.service.StatusForToday(ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.DayStatusMissing, status.Status)
}

func (suite *RateSyncServiceTestSuite) TestStatusForToday_RepoError() {
	ctx := context.Background()

	suite.mockRateRepo.On("HasRatesForDate", ctx, mock.Anything).Return(false, assert.AnError).Once()

	_, err := suite.service.StatusForToday(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

// --- Listing ---

func (suite *RateSyncServiceTestSuite) TestListRates_PassesFiltersThrough() {
	ctx := context.Background()
	currency := "USD"
	from := suite.date(2025, 1, 1)
	expected := []domain.ExchangeRate{{CurrencyFrom: "USD", CurrencyTo: "RSD", RateDate: from}}

	suite.mockRateRepo.On("ListRates", ctx, &currency, &from, (*time.Time)(nil)).Return(expected, nil).Once()

	rates, err := suite.service.ListRates(ctx, &currency, &from, nil)

	suite.Require().NoError(err)
	suite.Equal(expected, rates)
}

func TestRateSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateSyncServiceTestSuite))
}
