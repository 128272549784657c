package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// CurrencySearcher filters the currency table for the pickers.
//
//go:generate mockgen -source currencies.go -destination mock_currencies.go -package handlers
type CurrencySearcher interface {
	Search(query string) []models.Currency
}

// NewSearchCurrenciesHandler lists the currencies matching a picker query.
// @Summary Search currencies
// @Description Case and accent insensitive search over currency code and label. An empty query lists every currency.
// @Tags currencies
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} models.CurrenciesResponse
// @Router /currencies [get]
func NewSearchCurrenciesHandler(searcher CurrencySearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := searcher.Search(r.URL.Query().Get("q"))
		if list == nil {
			list = []models.Currency{}
		}
		writeJSON(w, http.StatusOK, models.CurrenciesResponse{Currencies: list})
	}
}
