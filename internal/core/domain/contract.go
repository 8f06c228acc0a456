package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer owns contracts.
type Customer struct {
	CustomerID int64  `json:"customerID"`
	ShortName  string `json:"shortName"`
}

// Contract is the aggregation root for billing summaries; it strictly
// owns its amortization plan entries.
type Contract struct {
	ContractID     int64       `json:"contractID"`
	ContractNumber string      `json:"contractNumber"`
	CustomerID     int64       `json:"customerID"`
	Plans          []AmortPlan `json:"plans"`
}

// AmortPlan is a single amortization schedule entry. DueAmount equals
// TotalAmount minus PaidAmount by convention; the store does not enforce it.
type AmortPlan struct {
	DocumentID   string          `json:"documentID"`
	ContractID   int64           `json:"contractID"`
	ClaimDueDate time.Time       `json:"claimDueDate"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	DueAmount    decimal.Decimal `json:"dueAmount"`
	CurrencyCode string          `json:"currencyCode"`
}

// ContractSummary aggregates the plan amounts of one contract (or of all
// contracts of a customer when flattened). PastDue is the portion of
// TotalDue whose claim due date is on or before the reference day.
type ContractSummary struct {
	TotalPaid decimal.Decimal `json:"totalPaid"`
	TotalDue  decimal.Decimal `json:"totalDue"`
	PastDue   decimal.Decimal `json:"pastDue"`
}

// ContractWithSummary pairs a contract and its plan list with the summary
// computed from that same snapshot.
type ContractWithSummary struct {
	Contract
	Summary ContractSummary `json:"summary"`
}

// CustomerContracts is the full query-layer view for one customer.
type CustomerContracts struct {
	TotalPaidAllContracts decimal.Decimal       `json:"totalPaidAllContracts"`
	Contracts             []ContractWithSummary `json:"contracts"`
}

// Summarize computes the contract's summary against the given reference day.
// The sums are taken from the loaded plans so they are always consistent
// with the plan list returned alongside them.
func (c Contract) Summarize(today time.Time) ContractSummary {
	s := ContractSummary{
		TotalPaid: decimal.Zero,
		TotalDue:  decimal.Zero,
		PastDue:   decimal.Zero,
	}
	for _, p := range c.Plans {
		s.TotalPaid = s.TotalPaid.Add(p.PaidAmount)
		s.TotalDue = s.TotalDue.Add(p.DueAmount)
		if !p.ClaimDueDate.After(today) {
			s.PastDue = s.PastDue.Add(p.DueAmount)
		}
	}
	return s
}
