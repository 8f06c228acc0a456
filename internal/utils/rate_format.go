package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RatePrecision is the number of decimal places rates are compared at.
const RatePrecision = 4

// ParseRate parses the provider's textual rate value, accepting both comma
// and dot as the fractional separator ("117,5882" and "117.5882" are equal).
func ParseRate(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(strings.ReplaceAll(s, ",", ".")))
}

// RatesEqual reports whether two rates are equal after rounding both to
// RatePrecision decimal places. Exact fixed-point arithmetic, no floats.
func RatesEqual(a, b decimal.Decimal) bool {
	return a.Round(RatePrecision).Equal(b.Round(RatePrecision))
}

// FormatRate renders a rate rounded to RatePrecision, as used in debug trails.
func FormatRate(r decimal.Decimal) string {
	return r.Round(RatePrecision).String()
}
