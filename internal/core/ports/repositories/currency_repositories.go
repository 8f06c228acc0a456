package repositories

import (
	"context"

	"github.com/mdjurovic/contract_rates_app/internal/core/domain"
)

// CurrencyReader defines read operations for the currency registry
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all registry entries, active or not.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// ListActiveCurrencyCodes retrieves the codes the reconciler tracks.
	ListActiveCurrencyCodes(ctx context.Context) ([]string, error)
}

// CurrencyWriter defines write operations for the currency registry
type CurrencyWriter interface {
	// SaveCurrency inserts or updates a registry entry.
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
