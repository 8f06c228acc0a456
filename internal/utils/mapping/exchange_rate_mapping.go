package mapping

import (
	"github.com/mdjurovic/contract_rates_app/internal/core/domain"
	"github.com/mdjurovic/contract_rates_app/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		CurrencyFrom:     d.CurrencyFrom,
		CurrencyTo:       d.CurrencyTo,
		ExchangeRateDate: d.RateDate,
		ExchangeRate:     d.Rate,
		Ts:               d.Ts,
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		CurrencyFrom: m.CurrencyFrom,
		CurrencyTo:   m.CurrencyTo,
		RateDate:     m.ExchangeRateDate,
		Rate:         m.ExchangeRate,
		Ts:           m.Ts,
	}
}
