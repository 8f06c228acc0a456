package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one daily quote against the reporting currency.
// Identity is the (CurrencyFrom, CurrencyTo, RateDate) triple; rows are
// inserted when a date/currency pair is first reconciled and overwritten
// in place when the provider value changes, never deleted.
type ExchangeRate struct {
	CurrencyFrom string          `json:"currencyFrom"`
	CurrencyTo   string          `json:"currencyTo"`
	RateDate     time.Time       `json:"rateDate"`
	Rate         decimal.Decimal `json:"rate"`
	Ts           time.Time       `json:"ts"` // last-write timestamp
}
