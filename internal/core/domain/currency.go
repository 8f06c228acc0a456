package domain

// Currency is a reference-data entry in the currency registry.
// The reconciler only tracks currencies that are not flagged inactive.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name         string `json:"name"`         // e.g., "US Dollar"
	Inactive     bool   `json:"inactive"`
}
