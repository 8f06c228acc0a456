package dto

import (
	"time"

	"github.com/mdjurovic/contract_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LoadRatesRequest triggers single-day reconciliation.
type LoadRatesRequest struct {
	Date string `form:"date" binding:"required,datefmt"`
}

// LoadRatesRangeRequest triggers reconciliation over an inclusive date range.
type LoadRatesRangeRequest struct {
	Start string `form:"start" binding:"required,datefmt"`
	End   string `form:"end" binding:"required,datefmt"`
}

// ListRatesRequest filters the stored-rate listing.
type ListRatesRequest struct {
	Currency string `form:"currency" binding:"omitempty,len=3"`
	From     string `form:"from" binding:"omitempty,datefmt"`
	To       string `form:"to" binding:"omitempty,datefmt"`
}

// RateSyncResponse is the reconciliation outcome payload.
type RateSyncResponse struct {
	Status   string   `json:"status"`
	Message  string   `json:"message"`
	Detail   string   `json:"detail,omitempty"`
	Inserted []string `json:"inserted,omitempty"`
	Updated  []string `json:"updated,omitempty"`
	Debug    []string `json:"debug,omitempty"`
}

// ToRateSyncResponse converts a domain.SyncResult to a RateSyncResponse DTO
func ToRateSyncResponse(r domain.SyncResult) RateSyncResponse {
	return RateSyncResponse{
		Status:   r.Status,
		Message:  r.Message,
		Detail:   r.Detail,
		Inserted: r.Inserted,
		Updated:  r.Updated,
		Debug:    r.Debug,
	}
}

// SyncStatusResponse reports whether today's rates are present.
type SyncStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// ToSyncStatusResponse converts a domain.SyncStatus to a SyncStatusResponse DTO
func ToSyncStatusResponse(s domain.SyncStatus) SyncStatusResponse {
	return SyncStatusResponse{
		Status:  s.Status,
		Message: s.Message,
		Detail:  s.Detail,
	}
}

// ExchangeRateResponse defines the data returned for one stored rate.
type ExchangeRateResponse struct {
	CurrencyFrom string          `json:"currencyFrom"`
	CurrencyTo   string          `json:"currencyTo"`
	RateDate     string          `json:"rateDate"`
	Rate         decimal.Decimal `json:"rate"`
	Ts           time.Time       `json:"ts"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to an ExchangeRateResponse DTO
func ToExchangeRateResponse(r domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		CurrencyFrom: r.CurrencyFrom,
		CurrencyTo:   r.CurrencyTo,
		RateDate:     r.RateDate.Format("2006-01-02"),
		Rate:         r.Rate,
		Ts:           r.Ts,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to DTOs
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	res := make([]ExchangeRateResponse, len(rates))
	for i, r := range rates {
		res[i] = ToExchangeRateResponse(r)
	}
	return res
}
