package facades

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

func newTestServer(t *testing.T, wantPath string, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, wantPath, req.URL.Path)
		rw.Header().Set("Content-Type", "application/json")
		rw.WriteHeader(status)
		_, _ = rw.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchLatest(t *testing.T) {
	server := newTestServer(t, "/v6/secret/latest/USD", http.StatusOK, `{
		"result": "success",
		"base_code": "USD",
		"conversion_rates": {"USD": 1, "EUR": 0.92}
	}`)
	facade := NewExchangeRateHTTPFacade(server.URL+"/v6/", "secret", server.Client())

	snapshot, err := facade.FetchLatest(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, "USD", snapshot.BaseCode)
	assert.Equal(t, models.ModeLatest, snapshot.Mode)
	assert.Equal(t, 0.92, snapshot.Rates["EUR"])
	assert.False(t, snapshot.FetchedAt.IsZero())
}

func TestFetchLatest_WithoutBaseCode(t *testing.T) {
	server := newTestServer(t, "/v6/secret/latest/USD", http.StatusOK,
		`{"result":"success","conversion_rates":{"EUR":0.92}}`)
	facade := NewExchangeRateHTTPFacade(server.URL+"/v6", "secret", server.Client())

	snapshot, err := facade.FetchLatest(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, "USD", snapshot.BaseCode)
	assert.Equal(t, 0.92, snapshot.Rates["EUR"])
}

func TestFetchLatest_BaseCodeMismatch(t *testing.T) {
	server := newTestServer(t, "/v6/secret/latest/USD", http.StatusOK,
		`{"result":"success","base_code":"GBP","conversion_rates":{"EUR":1.17}}`)
	facade := NewExchangeRateHTTPFacade(server.URL+"/v6", "secret", server.Client())

	snapshot, err := facade.FetchLatest(context.Background(), "USD")
	assert.Nil(t, snapshot)

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, ErrorTypeBaseMismatch, perr.Type)
}

func TestFetchHistory(t *testing.T) {
	server := newTestServer(t, "/v6/secret/history/USD/2024/1/5", http.StatusOK, `{
		"result": "success",
		"base_code": "USD",
		"year": 2024, "month": 1, "day": 5,
		"conversion_rates": {"EUR": 0.91}
	}`)
	facade := NewExchangeRateHTTPFacade(server.URL+"/v6", "secret", server.Client())

	snapshot, err := facade.FetchHistory(context.Background(), "USD", "2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, models.ModeHistory, snapshot.Mode)
	assert.Equal(t, "2024-01-05", snapshot.Date)
	assert.Equal(t, 0.91, snapshot.Rates["EUR"])
}

func TestFetchHistory_InvalidDate(t *testing.T) {
	facade := NewExchangeRateHTTPFacade("http://127.0.0.1:1", "secret", nil)

	_, err := facade.FetchHistory(context.Background(), "USD", "05/01/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestFetch_ProviderErrors(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		body           string
		wantType       string
		planRestricted bool
	}{
		{
			name:     "unsupported code",
			status:   http.StatusNotFound,
			body:     `{"result": "error", "error-type": "unsupported-code"}`,
			wantType: "unsupported-code",
		},
		{
			name:           "plan upgrade required",
			status:         http.StatusForbidden,
			body:           `{"result": "error", "error-type": "plan-upgrade-required"}`,
			wantType:       "plan-upgrade-required",
			planRestricted: true,
		},
		{
			name:     "quota reached with 200",
			status:   http.StatusOK,
			body:     `{"result": "error", "error-type": "quota-reached"}`,
			wantType: "quota-reached",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, "/key/latest/ABC", tt.status, tt.body)
			facade := NewExchangeRateHTTPFacade(server.URL, "key", server.Client())

			snapshot, err := facade.FetchLatest(context.Background(), "ABC")
			assert.Nil(t, snapshot)

			var perr *ProviderError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.wantType, perr.Type)
			assert.Equal(t, tt.planRestricted, perr.PlanRestricted())
		})
	}
}

func TestFetch_TransportErrors(t *testing.T) {
	t.Run("bad gateway without envelope", func(t *testing.T) {
		server := newTestServer(t, "/key/latest/USD", http.StatusBadGateway, `<html>bad gateway</html>`)
		facade := NewExchangeRateHTTPFacade(server.URL, "key", server.Client())

		_, err := facade.FetchLatest(context.Background(), "USD")
		var terr *TransportError
		require.True(t, errors.As(err, &terr))
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("garbage body", func(t *testing.T) {
		server := newTestServer(t, "/key/latest/USD", http.StatusOK, `not json`)
		facade := NewExchangeRateHTTPFacade(server.URL, "key", server.Client())

		_, err := facade.FetchLatest(context.Background(), "USD")
		var terr *TransportError
		require.True(t, errors.As(err, &terr))
		assert.Contains(t, err.Error(), "decode response")
	})

	t.Run("connection refused", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		facade := NewExchangeRateHTTPFacade(url, "key", nil)
		_, err := facade.FetchLatest(context.Background(), "USD")
		var terr *TransportError
		assert.True(t, errors.As(err, &terr))
	})

	t.Run("context deadline", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			select {
			case <-req.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		facade := NewExchangeRateHTTPFacade(server.URL, "key", server.Client())
		_, err := facade.FetchLatest(ctx, "USD")
		var terr *TransportError
		require.True(t, errors.As(err, &terr))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestFetch_TransportErrorHidesAPIKey(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	facade := NewExchangeRateHTTPFacade(addr, "top-secret-key", nil)
	_, err := facade.FetchLatest(context.Background(), "USD")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "top-secret-key")
	assert.Contains(t, err.Error(), "Get request")
}
