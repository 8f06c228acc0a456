package kursnalista_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdjurovic/contract_rates_app/internal/adapters/ratesource/kursnalista"
	"github.com/mdjurovic/contract_rates_app/internal/core/ports/ratesource"
)

func testDate() time.Time {
	return time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)
}

func TestFetchDaily_Success(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"result": {
				"usd": {"sre": "117,5882"},
				"EUR": {"sre": "117.1000"}
			}
		}`))
	}))
	defer server.Close()

	client := kursnalista.NewClient(server.URL, "test-key", 5*time.Second)

	quotes, err := client.FetchDaily(context.Background(), testDate())

	require.NoError(t, err)
	assert.Equal(t, "/test-key/kl_na_dan/09.01.2025/json", requestedPath)
	assert.Equal(t, testDate(), quotes.Date)
	assert.Equal(t, "117,5882", quotes.Quotes["usd"])
	assert.Equal(t, "117.1000", quotes.Quotes["EUR"])
}

func TestFetchDaily_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := kursnalista.NewClient(server.URL, "test-key", 5*time.Second)

	_, err := client.FetchDaily(context.Background(), testDate())

	require.Error(t, err)
	var transportErr *ratesource.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusInternalServerError, transportErr.StatusCode)
	assert.Equal(t, "upstream exploded", transportErr.Body)
}

func TestFetchDaily_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "error", "code": "2", "message": "invalid api key"}`))
	}))
	defer server.Close()

	client := kursnalista.NewClient(server.URL, "bad-key", 5*time.Second)

	_, err := client.FetchDaily(context.Background(), testDate())

	require.Error(t, err)
	var providerErr *ratesource.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "2", providerErr.Code)
	assert.Equal(t, "invalid api key", providerErr.Message)
}

func TestFetchDaily_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := kursnalista.NewClient(server.URL, "test-key", 5*time.Second)

	_, err := client.FetchDaily(context.Background(), testDate())

	require.Error(t, err)
	var formatErr *ratesource.FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestFetchDaily_OkStatusWithoutResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ok"}`))
	}))
	defer server.Close()

	client := kursnalista.NewClient(server.URL, "test-key", 5*time.Second)

	_, err := client.FetchDaily(context.Background(), testDate())

	require.Error(t, err)
	var formatErr *ratesource.FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestFetchDaily_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	client := kursnalista.NewClient(server.URL, "test-key", 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchDaily(ctx, testDate())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
