package mapping

import (
	"github.com/mdjurovic/contract_rates_app/internal/core/domain"
	"github.com/mdjurovic/contract_rates_app/internal/models"
)

// ToDomainContract converts a model Contract and its plan rows to a domain Contract
func ToDomainContract(m models.Contract, plans []models.AmortPlan) domain.Contract {
	c := domain.Contract{
		ContractID:     m.ContractID,
		ContractNumber: m.ContractNumber,
		CustomerID:     m.CustomerID,
		Plans:          make([]domain.AmortPlan, len(plans)),
	}
	for i, p := range plans {
		c.Plans[i] = ToDomainAmortPlan(p)
	}
	return c
}

// ToDomainAmortPlan converts a model AmortPlan to a domain AmortPlan
func ToDomainAmortPlan(m models.AmortPlan) domain.AmortPlan {
	return domain.AmortPlan{
		DocumentID:   m.DocumentID,
		ContractID:   m.ContractID,
		ClaimDueDate: m.ClaimDueDate,
		TotalAmount:  m.TotalAmount,
		PaidAmount:   m.PaidAmount,
		DueAmount:    m.DueAmount,
		CurrencyCode: m.CurrencyCode,
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID: m.CustomerID,
		ShortName:  m.ShortName,
	}
}
