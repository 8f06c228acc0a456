package repositories

import (
	"context"
	"time"

	"github.com/mdjurovic/contract_rates_app/internal/core/domain"
)

// ExchangeRateReader defines read operations for stored exchange rates
type ExchangeRateReader interface {
	// FindRate retrieves the rate stored under the (from, to, date) triple.
	// Returns apperrors.ErrNotFound when no row exists.
	FindRate(ctx context.Context, currencyFrom, currencyTo string, date time.Time) (*domain.ExchangeRate, error)

	// HasRatesForDate reports whether any rate row exists for the given day.
	HasRatesForDate(ctx context.Context, date time.Time) (bool, error)

	// ListRates retrieves stored rates, optionally filtered by source
	// currency and by an inclusive date window.
	ListRates(ctx context.Context, currencyFrom *string, from, to *time.Time) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for stored exchange rates
type ExchangeRateWriter interface {
	// SaveRates upserts the given rows in a single transaction. Rows keyed
	// by an existing (from, to, date) triple overwrite the stored rate and
	// timestamp in place.
	SaveRates(ctx context.Context, rates []domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange-rate repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
