package services

import (
	portsrepo "github.com/mdjurovic/contract_rates_app/internal/core/ports/repositories"
	"github.com/mdjurovic/contract_rates_app/internal/core/ports/ratesource"
	portssvc "github.com/mdjurovic/contract_rates_app/internal/core/ports/services"
	"github.com/mdjurovic/contract_rates_app/internal/platform/metrics"
)

// NewServiceContainer wires every application service with its dependencies.
func NewServiceContainer(
	repos *portsrepo.RepositoryProvider,
	source ratesource.RateSource,
	baseCurrency string,
	syncMetrics *metrics.SyncMetrics,
) *portssvc.ServiceContainer {
	rateSyncOpts := []RateSyncServiceOption{}
	if syncMetrics != nil {
		rateSyncOpts = append(rateSyncOpts, WithSyncMetrics(syncMetrics))
	}

	return &portssvc.ServiceContainer{
		Currency: NewCurrencyService(repos.CurrencyRepo),
		RateSync: NewRateSyncService(repos.ExchangeRateRepo, repos.CurrencyRepo, source, baseCurrency, rateSyncOpts...),
		Contract: NewContractService(repos.ContractRepo),
		Customer: NewCustomerService(repos.CustomerRepo),
	}
}
