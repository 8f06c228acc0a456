package services

import (
	"context"
	"fmt"

	"github.com/mdjurovic/contract_rates_app/internal/core/domain"
	portsrepo "github.com/mdjurovic/contract_rates_app/internal/core/ports/repositories"
	portssvc "github.com/mdjurovic/contract_rates_app/internal/core/ports/services"
)

// customerService implements customer lookups.
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// GetCustomerByID retrieves a customer by its numeric identifier.
func (s *customerService) GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %d: %w", customerID, err)
	}
	return customer, nil
}
