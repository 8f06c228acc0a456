package repositories

import (
	"context"

	"github.com/mdjurovic/contract_rates_app/internal/core/domain"
)

// ContractReader defines read operations for contract data
type ContractReader interface {
	// ListContractsByCustomer retrieves every contract of the customer
	// together with its amortization plan entries. Returns an empty slice
	// (not an error) when the customer has no contracts.
	ListContractsByCustomer(ctx context.Context, customerID int64) ([]domain.Contract, error)
}

// ContractRepositoryFacade combines all contract-related repository interfaces.
// Contracts and their plans are read-only from this service's perspective.
type ContractRepositoryFacade interface {
	ContractReader
}

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by its numeric identifier.
	FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
}
