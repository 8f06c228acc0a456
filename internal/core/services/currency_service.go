package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mdjurovic/contract_rates_app/internal/core/domain"
	portsrepo "github.com/mdjurovic/contract_rates_app/internal/core/ports/repositories"
	portssvc "github.com/mdjurovic/contract_rates_app/internal/core/ports/services"
	"github.com/mdjurovic/contract_rates_app/internal/dto"
)

// currencyService implements the currency registry operations.
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency registry service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(currencyCode))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", currencyCode, err)
	}
	return currency, nil
}

// ListCurrencies retrieves all registry entries.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	return currencies, nil
}

// UpsertCurrency inserts or updates a registry entry.
func (s *currencyService) UpsertCurrency(ctx context.Context, req dto.UpsertCurrencyRequest) (*domain.Currency, error) {
	currency := domain.Currency{
		CurrencyCode: strings.ToUpper(req.CurrencyCode),
		Name:         req.Name,
		Inactive:     req.Inactive,
	}
	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save currency", slog.String("currencyCode", currency.CurrencyCode))
		return nil, fmt.Errorf("failed to save currency %s: %w", currency.CurrencyCode, err)
	}
	s.LogInfo(ctx, "Currency saved", slog.String("currencyCode", currency.CurrencyCode))
	return &currency, nil
}
