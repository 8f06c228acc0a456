package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmortPlan mirrors a row of the amort_plan table.
type AmortPlan struct {
	DocumentID   string          `json:"documentID"`
	ContractID   int64           `json:"contractID"`
	ClaimDueDate time.Time       `json:"claimDueDate"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	DueAmount    decimal.Decimal `json:"dueAmount"`
	CurrencyCode string          `json:"currencyCode"`
}
