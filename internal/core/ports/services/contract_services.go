package services

import (
	"context"

	"github.com/mdjurovic/contract_rates_app/internal/core/domain"
)

// ContractReaderSvc defines the read-side contract aggregations
type ContractReaderSvc interface {
	// ContractsByCustomer loads every contract of the customer with its
	// plans and per-contract summaries, plus the grand total paid across
	// all contracts. Returns apperrors.ErrNotFound when the customer has
	// zero contracts.
	ContractsByCustomer(ctx context.Context, customerID int64) (*domain.CustomerContracts, error)

	// SummaryByCustomer computes the same aggregate flattened across all
	// the customer's contracts, without a per-contract breakdown.
	SummaryByCustomer(ctx context.Context, customerID int64) (*domain.ContractSummary, error)
}

// ContractSvcFacade combines all contract-related service interfaces
type ContractSvcFacade interface {
	ContractReaderSvc
}

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a customer by its numeric identifier.
	GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
}
