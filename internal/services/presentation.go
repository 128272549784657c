package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// ResultPlaces is the number of decimals of the converted amount.
const ResultPlaces = 5

// Present derives the view from the selection and the latest snapshot.
// It is a pure function and must be called on every read.
//
// A result is shown only when both currencies and a non-zero amount are selected,
// no error is pending, and the snapshot was fetched for the current From, mode and date.
func Present(sel models.Selection, snapshot *models.RateSnapshot, errText string, loading bool) models.ViewState {
	view := models.ViewState{
		Loading: loading,
		Error:   errText,
	}

	if sel.From.IsEmpty() || sel.To.IsEmpty() || sel.Amount == 0 || errText != "" {
		return view
	}
	if !snapshot.Matches(sel) {
		return view
	}
	rate, ok := snapshot.Rates[sel.To.Code]
	if !ok {
		return view
	}

	amount := decimal.NewFromFloat(sel.Amount)
	multiplier := decimal.NewFromFloat(rate)
	converted := amount.Mul(multiplier)

	view.ShowResult = true
	view.ConvertedAmount, _ = converted.Float64()
	view.AmountLine = fmt.Sprintf("%s %s =", amount.String(), sel.From.Code)
	view.ResultLine = fmt.Sprintf("%s %s", converted.StringFixed(ResultPlaces), sel.To.Code)
	view.RateLine = fmt.Sprintf("1 %s = %s %s", sel.From.Code, multiplier.String(), sel.To.Code)
	return view
}
