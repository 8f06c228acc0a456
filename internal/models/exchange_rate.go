package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate mirrors a row of the exchange_rates table.
// The primary key is (currency_from, currency_to, exchange_rate_date).
type ExchangeRate struct {
	CurrencyFrom     string          `json:"currencyFrom"`
	CurrencyTo       string          `json:"currencyTo"`
	ExchangeRateDate time.Time       `json:"exchangeRateDate"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	Ts               time.Time       `json:"ts"`
}
