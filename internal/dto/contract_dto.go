package dto

import (
	"github.com/mdjurovic/contract_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmortPlanResponse is one amortization plan entry in a contract listing.
type AmortPlanResponse struct {
	ClaimDueDate string          `json:"claimDueDate"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	DueAmount    decimal.Decimal `json:"dueAmount"`
	CurrencyCode string          `json:"currencyCode"`
}

// ContractSummaryResponse aggregates plan amounts.
type ContractSummaryResponse struct {
	TotalPaid decimal.Decimal `json:"totalPaid"`
	TotalDue  decimal.Decimal `json:"totalDue"`
	PastDue   decimal.Decimal `json:"pastDue"`
}

// ContractResponse is one contract with its plans and summary.
type ContractResponse struct {
	ContractNumber string                  `json:"contractNumber"`
	Plans          []AmortPlanResponse     `json:"plans"`
	Summary        ContractSummaryResponse `json:"summary"`
}

// CustomerContractsResponse is the full by-customer listing.
type CustomerContractsResponse struct {
	TotalPaidAllContracts decimal.Decimal    `json:"totalPaidAllContracts"`
	Contracts             []ContractResponse `json:"contracts"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID int64  `json:"customerID"`
	ShortName  string `json:"shortName"`
}

// ToContractSummaryResponse converts a domain.ContractSummary to a DTO
func ToContractSummaryResponse(s domain.ContractSummary) ContractSummaryResponse {
	return ContractSummaryResponse{
		TotalPaid: s.TotalPaid,
		TotalDue:  s.TotalDue,
		PastDue:   s.PastDue,
	}
}

// ToCustomerContractsResponse converts a domain.CustomerContracts to a DTO
func ToCustomerContractsResponse(cc *domain.CustomerContracts) CustomerContractsResponse {
	resp := CustomerContractsResponse{
		TotalPaidAllContracts: cc.TotalPaidAllContracts,
		Contracts:             make([]ContractResponse, len(cc.Contracts)),
	}
	for i, c := range cc.Contracts {
		contract := ContractResponse{
			ContractNumber: c.ContractNumber,
			Plans:          make([]AmortPlanResponse, len(c.Plans)),
			Summary:        ToContractSummaryResponse(c.Summary),
		}
		for j, p := range c.Plans {
			contract.Plans[j] = AmortPlanResponse{
				ClaimDueDate: p.ClaimDueDate.Format("2006-01-02"),
				TotalAmount:  p.TotalAmount,
				PaidAmount:   p.PaidAmount,
				DueAmount:    p.DueAmount,
				CurrencyCode: p.CurrencyCode,
			}
		}
		resp.Contracts[i] = contract
	}
	return resp
}

// ToCustomerResponse converts a domain.Customer to a CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		ShortName:  c.ShortName,
	}
}
