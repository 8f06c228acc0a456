package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mdjurovic/contract_rates_app/internal/apperrors"
	"github.com/mdjurovic/contract_rates_app/internal/core/domain"
	portsrepo "github.com/mdjurovic/contract_rates_app/internal/core/ports/repositories"
	"github.com/mdjurovic/contract_rates_app/internal/core/ports/ratesource"
	portssvc "github.com/mdjurovic/contract_rates_app/internal/core/ports/services"
	"github.com/mdjurovic/contract_rates_app/internal/platform/metrics"
	"github.com/mdjurovic/contract_rates_app/internal/utils"
)

// minSupportedDate is the earliest day the provider publishes rates for.
var minSupportedDate = time.Date(2002, 5, 15, 0, 0, 0, 0, time.UTC)

// rateSyncService reconciles remote daily rates against the rate store.
type rateSyncService struct {
	BaseService
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
	source       ratesource.RateSource
	baseCurrency string
	syncMetrics  *metrics.SyncMetrics
	now          func() time.Time
}

// RateSyncServiceOption is a functional option for configuring the sync service
type RateSyncServiceOption func(*rateSyncService)

// WithSyncMetrics attaches prometheus metrics to the sync service.
func WithSyncMetrics(m *metrics.SyncMetrics) RateSyncServiceOption {
	return func(s *rateSyncService) {
		s.syncMetrics = m
	}
}

// WithClock overrides the wall clock; tests use it to pin the calendar day.
func WithClock(now func() time.Time) RateSyncServiceOption {
	return func(s *rateSyncService) {
		s.now = now
	}
}

// NewRateSyncService creates the reconciliation service. baseCurrency is the
// reporting currency every fetched rate is stored against.
func NewRateSyncService(
	rateRepo portsrepo.ExchangeRateRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	source ratesource.RateSource,
	baseCurrency string,
	options ...RateSyncServiceOption,
) portssvc.RateSyncSvcFacade {
	svc := &rateSyncService{
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
		source:       source,
		baseCurrency: strings.ToUpper(baseCurrency),
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RateSyncSvcFacade = (*rateSyncService)(nil)

// SyncRates reconciles every calendar date from start to end inclusive.
// Dates are processed in ascending order, one at a time; the first remote
// failure aborts the whole run, keeping the dates already committed.
func (s *rateSyncService) SyncRates(ctx context.Context, start time.Time, end *time.Time) domain.SyncResult {
	started := s.now()
	result, skipped := s.syncRates(ctx, start, end)

	if s.syncMetrics != nil {
		s.syncMetrics.RecordRun(result.Status, len(result.Inserted), len(result.Updated), skipped, s.now().Sub(started).Seconds())
	}
	return result
}

func (s *rateSyncService) syncRates(ctx context.Context, start time.Time, end *time.Time) (domain.SyncResult, int) {
	today := dateOnly(s.now())
	start = dateOnly(start)

	last := start
	if end != nil {
		last = dateOnly(*end)
	}

	// Bounds are checked before any I/O; a rejected call mutates nothing.
	if start.Before(minSupportedDate) || last.Before(minSupportedDate) {
		return errorResult(fmt.Sprintf("You cannot request the rate list before %s.", minSupportedDate.Format("02.01.2006")), ""), 0
	}
	if start.After(today) || last.After(today) {
		return errorResult(fmt.Sprintf("You cannot request the rate list for dates after %s.", today.Format("02.01.2006")), ""), 0
	}

	codes, err := s.currencyRepo.ListActiveCurrencyCodes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load active currencies")
		return errorResult("Failed to load the active currency list.", err.Error()), 0
	}

	successCount := 0
	skipped := 0
	var inserted, updated, debug []string

	for date := start; !date.After(last); date = date.AddDate(0, 0, 1) {
		quotes, err := s.source.FetchDaily(ctx, date)
		if err != nil {
			s.LogError(ctx, err, "Rate fetch failed, aborting sync", slog.String("date", date.Format("2006-01-02")))
			return fetchErrorResult(date, err), skipped
		}

		ts := s.now()
		var pending []domain.ExchangeRate

		for _, code := range codes {
			raw, ok := lookupQuote(quotes.Quotes, code)
			if !ok || raw == "" {
				continue
			}
			rate, perr := utils.ParseRate(raw)
			if perr != nil {
				// expected sparse data, not corruption
				continue
			}

			existing, ferr := s.rateRepo.FindRate(ctx, code, s.baseCurrency, date)
			switch {
			case errors.Is(ferr, apperrors.ErrNotFound):
				pending = append(pending, domain.ExchangeRate{
					CurrencyFrom: code,
					CurrencyTo:   s.baseCurrency,
					RateDate:     date,
					Rate:         rate,
					Ts:           ts,
				})
				inserted = append(inserted, code)
				debug = append(debug, fmt.Sprintf("%s: Inserted | API=%s", code, utils.FormatRate(rate)))
				successCount++
			case ferr != nil:
				s.LogError(ctx, ferr, "Failed to read stored rate", slog.String("currency", code))
				return errorResult("Failed to read the stored rate for "+code+".", ferr.Error()), skipped
			case !utils.RatesEqual(existing.Rate, rate):
				pending = append(pending, domain.ExchangeRate{
					CurrencyFrom: code,
					CurrencyTo:   s.baseCurrency,
					RateDate:     date,
					Rate:         rate,
					Ts:           ts,
				})
				updated = append(updated, code)
				debug = append(debug, fmt.Sprintf("%s: Updated | DB=%s, API=%s", code, utils.FormatRate(existing.Rate), utils.FormatRate(rate)))
				successCount++
			default:
				skipped++
				debug = append(debug, fmt.Sprintf("%s: Skipped (no change) | DB=%s, API=%s", code, utils.FormatRate(existing.Rate), utils.FormatRate(rate)))
			}
		}

		if len(pending) == 0 {
			continue
		}

		// One transaction per date keeps the unaborted prefix of a range
		// committed when a later date fails.
		if err := s.rateRepo.SaveRates(ctx, pending); err != nil {
			s.LogError(ctx, err, "Failed to persist rates", slog.String("date", date.Format("2006-01-02")))
			return errorResult(fmt.Sprintf("Failed to persist rates for %s.", date.Format("02.01.2006")), err.Error()), skipped
		}
	}

	if successCount == 0 {
		return domain.SyncResult{
			Status:   domain.SyncStatusInfo,
			Message:  "The exchange rate list has already been entered for the requested date. There is no new data to add.",
			Inserted: inserted,
			Updated:  updated,
			Debug:    debug,
		}, skipped
	}

	s.LogInfo(ctx, "Rate sync finished",
		slog.Int("changed", successCount),
		slog.Int("inserted", len(inserted)),
		slog.Int("updated", len(updated)))

	return domain.SyncResult{
		Status:   domain.SyncStatusSuccess,
		Message:  fmt.Sprintf("Rates successfully entered for %d currency entries.", successCount),
		Inserted: inserted,
		Updated:  updated,
		Debug:    debug,
	}, skipped
}

// StatusForToday reports whether any rate row exists for the current day.
func (s *rateSyncService) StatusForToday(ctx context.Context) (domain.SyncStatus, error) {
	today := dateOnly(s.now())

	exists, err := s.rateRepo.HasRatesForDate(ctx, today)
	if err != nil {
		return domain.SyncStatus{}, fmt.Errorf("failed to check today's rates: %w", err)
	}

	if exists {
		return domain.SyncStatus{
			Status:  domain.DayStatusComplete,
			Message: "Rates for today's date are already registered.",
			Detail:  today.Format("2006-01-02"),
		}, nil
	}
	return domain.SyncStatus{
		Status:  domain.DayStatusMissing,
		Message: "Rates for today's date have not yet been registered.",
		Detail:  today.Format("2006-01-02"),
	}, nil
}

// ListRates retrieves stored rates with optional currency/date filters.
func (s *rateSyncService) ListRates(ctx context.Context, currencyFrom *string, from, to *time.Time) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListRates(ctx, currencyFrom, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	return rates, nil
}

// lookupQuote finds the quote for a currency code regardless of the casing
// the provider used for its keys.
func lookupQuote(quotes map[string]string, code string) (string, bool) {
	if raw, ok := quotes[code]; ok {
		return raw, true
	}
	for key, raw := range quotes {
		if strings.EqualFold(key, code) {
			return raw, true
		}
	}
	return "", false
}

func fetchErrorResult(date time.Time, err error) domain.SyncResult {
	dateStr := date.Format("02.01.2006")

	var transportErr *ratesource.TransportError
	if errors.As(err, &transportErr) {
		return errorResult(fmt.Sprintf("Error %d for %s.", transportErr.StatusCode, dateStr), transportErr.Body)
	}

	var providerErr *ratesource.ProviderError
	if errors.As(err, &providerErr) {
		return errorResult(fmt.Sprintf("Provider error for %s: %s", dateStr, providerErr.Error()), "")
	}

	var formatErr *ratesource.FormatError
	if errors.As(err, &formatErr) {
		return errorResult(fmt.Sprintf("Answer for %s does not contain the expected format.", dateStr), formatErr.Detail)
	}

	return errorResult(fmt.Sprintf("Request for %s failed.", dateStr), err.Error())
}

func errorResult(message, detail string) domain.SyncResult {
	return domain.SyncResult{
		Status:  domain.SyncStatusError,
		Message: message,
		Detail:  detail,
	}
}

// dateOnly truncates a timestamp to its UTC calendar day.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
