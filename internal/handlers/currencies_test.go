package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

func TestSearchCurrenciesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSearcher := NewMockCurrencySearcher(ctrl)
	handler := NewSearchCurrenciesHandler(mockSearcher)

	tests := []struct {
		name     string
		url      string
		query    string
		result   []models.Currency
		expected models.CurrenciesResponse
	}{
		{
			name:     "match",
			url:      "/currencies?q=eur",
			query:    "eur",
			result:   []models.Currency{{Code: "EUR", Label: "Euro", IconRef: "eu"}},
			expected: models.CurrenciesResponse{Currencies: []models.Currency{{Code: "EUR", Label: "Euro", IconRef: "eu"}}},
		},
		{
			name:     "no match",
			url:      "/currencies?q=zzz",
			query:    "zzz",
			result:   nil,
			expected: models.CurrenciesResponse{Currencies: []models.Currency{}},
		},
		{
			name:     "empty query",
			url:      "/currencies",
			query:    "",
			result:   []models.Currency{{Code: "USD"}, {Code: "EUR"}},
			expected: models.CurrenciesResponse{Currencies: []models.Currency{{Code: "USD"}, {Code: "EUR"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSearcher.EXPECT().Search(tt.query).Return(tt.result)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp models.CurrenciesResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expected, resp)
		})
	}
}
