package services

import (
	"context"
	"time"

	"github.com/mdjurovic/contract_rates_app/internal/core/domain"
)

// RateSyncSvcFacade is the reconciliation entry point.
type RateSyncSvcFacade interface {
	// SyncRates reconciles remote daily rates against the store for every
	// calendar date from start to end inclusive (end nil means just start).
	// The outcome, including every failure mode, is reported through the
	// returned SyncResult rather than as an error.
	SyncRates(ctx context.Context, start time.Time, end *time.Time) domain.SyncResult

	// StatusForToday reports whether any rate row exists for the current day.
	StatusForToday(ctx context.Context) (domain.SyncStatus, error)

	// ListRates retrieves stored rates with optional currency/date filters.
	ListRates(ctx context.Context, currencyFrom *string, from, to *time.Time) ([]domain.ExchangeRate, error)
}
