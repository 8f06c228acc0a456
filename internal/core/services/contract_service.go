package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mdjurovic/contract_rates_app/internal/apperrors"
	"github.com/mdjurovic/contract_rates_app/internal/core/domain"
	portsrepo "github.com/mdjurovic/contract_rates_app/internal/core/ports/repositories"
	portssvc "github.com/mdjurovic/contract_rates_app/internal/core/ports/services"
)

// contractService implements the contract aggregation queries.
type contractService struct {
	BaseService
	contractRepo portsrepo.ContractRepositoryFacade
	now          func() time.Time
}

// ContractServiceOption is a functional option for configuring the service
type ContractServiceOption func(*contractService)

// WithContractClock overrides the wall clock used as the past-due reference day.
func WithContractClock(now func() time.Time) ContractServiceOption {
	return func(s *contractService) {
		s.now = now
	}
}

// NewContractService creates a new contract query service.
func NewContractService(contractRepo portsrepo.ContractRepositoryFacade, options ...ContractServiceOption) portssvc.ContractSvcFacade {
	svc := &contractService{
		contractRepo: contractRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ContractSvcFacade = (*contractService)(nil)

// ContractsByCustomer loads every contract of the customer with its plans,
// per-contract summaries and the grand total paid across contracts.
func (s *contractService) ContractsByCustomer(ctx context.Context, customerID int64) (*domain.CustomerContracts, error) {
	contracts, err := s.contractRepo.ListContractsByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts for customer %d: %w", customerID, err)
	}
	if len(contracts) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no contracts found for customer %d", customerID))
	}

	today := dateOnly(s.now())
	result := &domain.CustomerContracts{
		TotalPaidAllContracts: decimal.Zero,
		Contracts:             make([]domain.ContractWithSummary, 0, len(contracts)),
	}
	for _, contract := range contracts {
		summary := contract.Summarize(today)
		result.TotalPaidAllContracts = result.TotalPaidAllContracts.Add(summary.TotalPaid)
		result.Contracts = append(result.Contracts, domain.ContractWithSummary{
			Contract: contract,
			Summary:  summary,
		})
	}
	return result, nil
}

// SummaryByCustomer computes the aggregate flattened across all the
// customer's contracts. A customer with zero contracts gets a zero summary,
// not a not-found error.
func (s *contractService) SummaryByCustomer(ctx context.Context, customerID int64) (*domain.ContractSummary, error) {
	contracts, err := s.contractRepo.ListContractsByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts for customer %d: %w", customerID, err)
	}

	today := dateOnly(s.now())
	total := domain.ContractSummary{
		TotalPaid: decimal.Zero,
		TotalDue:  decimal.Zero,
		PastDue:   decimal.Zero,
	}
	for _, contract := range contracts {
		summary := contract.Summarize(today)
		total.TotalPaid = total.TotalPaid.Add(summary.TotalPaid)
		total.TotalDue = total.TotalDue.Add(summary.TotalDue)
		total.PastDue = total.PastDue.Add(summary.PastDue)
	}
	return &total, nil
}
