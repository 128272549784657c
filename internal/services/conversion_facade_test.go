package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
)

func TestConversion_WithExchangeRateFacade(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		showResult bool
		resultLine string
		errText    string
	}{
		{
			name:       "envelope without base code",
			body:       `{"result":"success","conversion_rates":{"EUR":0.92}}`,
			showResult: true,
			resultLine: "9.20000 EUR",
		},
		{
			name:       "envelope with base code",
			body:       `{"result":"success","base_code":"USD","conversion_rates":{"EUR":0.92}}`,
			showResult: true,
			resultLine: "9.20000 EUR",
		},
		{
			name:    "envelope for another base",
			body:    `{"result":"success","base_code":"GBP","conversion_rates":{"EUR":1.17}}`,
			errText: "exchange rate provider error: base-code-mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/key/latest/USD", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewConversion(facades.NewExchangeRateHTTPFacade(server.URL, "key", server.Client()), time.Second)
			defer c.Close()

			c.SelectTo(eur)
			c.SetAmountText("10")
			c.SelectFrom(usd)
			waitIdle(t, c)

			view := c.View()
			require.Equal(t, tt.showResult, view.ShowResult)
			assert.Equal(t, tt.resultLine, view.ResultLine)
			assert.Equal(t, tt.errText, view.Error)
			if tt.showResult {
				assert.Equal(t, "10 USD =", view.AmountLine)
				assert.Equal(t, "1 USD = 0.92 EUR", view.RateLine)
			}
		})
	}
}
