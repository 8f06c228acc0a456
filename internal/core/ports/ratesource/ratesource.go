package ratesource

import (
	"context"
	"fmt"
	"time"
)

// DailyQuotes is the parsed daily document of one provider fetch.
// Quotes keeps the provider's own currency keys and the raw textual rate
// ("sre" field); the reconciler decides how to match and parse them.
// Absent or unparseable entries are expected sparse data, not corruption.
type DailyQuotes struct {
	Date   time.Time
	Quotes map[string]string
}

// RateSource fetches the daily exchange-rate document for one date.
// Implementations distinguish their failure modes through TransportError,
// ProviderError and FormatError so callers can report each path explicitly.
type RateSource interface {
	FetchDaily(ctx context.Context, date time.Time) (*DailyQuotes, error)
}

// TransportError reports a failed HTTP exchange (non-success status).
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("rate source returned HTTP %d", e.StatusCode)
}

// ProviderError reports a well-formed response whose status is not "ok".
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("unknown provider error (code: %s)", e.Code)
}

// FormatError reports a response that does not match the provider contract:
// an unparseable body, or a nominally-ok document without a result payload.
type FormatError struct {
	Detail string
}

func (e *FormatError) Error() string {
	return "rate source response does not have the expected format"
}
