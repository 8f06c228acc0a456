package models

// Currency mirrors a row of the currencies table.
type Currency struct {
	CurrencyCode string `json:"currencyCode"`
	Name         string `json:"name"`
	Inactive     bool   `json:"inactive"`
}
