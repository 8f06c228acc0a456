package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mdjurovic/contract_rates_app/internal/core/domain"
)

func TestSummarize_EmptyPlans(t *testing.T) {
	c := domain.Contract{ContractID: 1}

	s := c.Summarize(time.Now())

	assert.True(t, s.TotalPaid.IsZero())
	assert.True(t, s.TotalDue.IsZero())
	assert.True(t, s.PastDue.IsZero())
}

func TestSummarize_PastDueBoundary(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	c := domain.Contract{
		ContractID: 1,
		Plans: []domain.AmortPlan{
			{ClaimDueDate: today, DueAmount: decimal.RequireFromString("10")},
			{ClaimDueDate: today.AddDate(0, 0, 1), DueAmount: decimal.RequireFromString("20")},
			{ClaimDueDate: today.AddDate(0, 0, -1), DueAmount: decimal.RequireFromString("30")},
		},
	}

	s := c.Summarize(today)

	// a plan due today is already past due; tomorrow's is not
	assert.True(t, s.TotalDue.Equal(decimal.RequireFromString("60")))
	assert.True(t, s.PastDue.Equal(decimal.RequireFromString("40")))
}
