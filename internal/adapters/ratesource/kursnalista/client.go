// Package kursnalista implements the RateSource port against the
// kursna-lista.info daily exchange-rate API.
package kursnalista

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mdjurovic/contract_rates_app/internal/core/ports/ratesource"
)

const statusOK = "ok"

// Client fetches daily rate documents over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client for the given provider base URL and API key.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

var _ ratesource.RateSource = (*Client)(nil)

// rateDocument is the provider's per-date response shape.
type rateDocument struct {
	Status  string                `json:"status"`
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Result  map[string]quoteEntry `json:"result"`
}

type quoteEntry struct {
	Sre string `json:"sre"` // middle rate, textual, comma-or-dot decimal
}

// FetchDaily retrieves and parses the rate document for one date.
// Failure modes map onto the port's error types: *TransportError for a
// non-success HTTP status, *ProviderError for a document whose status is
// not "ok", *FormatError for an unparseable body or a missing result.
func (c *Client) FetchDaily(ctx context.Context, date time.Time) (*ratesource.DailyQuotes, error) {
	url := fmt.Sprintf("%s/%s/kl_na_dan/%s/json", c.baseURL, c.apiKey, date.Format("02.01.2006"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate source request: %w", err)
	}
	req.Header.Set("User-Agent", "contract-rates-app/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rate source request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate source response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ratesource.TransportError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var doc rateDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &ratesource.FormatError{Detail: err.Error()}
	}

	if doc.Status != statusOK {
		return nil, &ratesource.ProviderError{Code: doc.Code, Message: doc.Message}
	}

	if doc.Result == nil {
		return nil, &ratesource.FormatError{Detail: string(body)}
	}

	quotes := make(map[string]string, len(doc.Result))
	for code, entry := range doc.Result {
		quotes[code] = entry.Sre
	}

	return &ratesource.DailyQuotes{Date: date, Quotes: quotes}, nil
}
