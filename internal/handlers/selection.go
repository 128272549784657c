package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// SelectionUpdater applies user input to a conversion view.
//
//go:generate mockgen -source selection.go -destination mock_selection.go -package handlers
type SelectionUpdater interface {
	SelectFrom(ctx context.Context, id, code string) (models.SessionResponse, error)
	SelectTo(ctx context.Context, id, code string) (models.SessionResponse, error)
	SetAmount(ctx context.Context, id, text string) (models.SessionResponse, error)
	SetMode(ctx context.Context, id, mode string) (models.SessionResponse, error)
	SetHistoryDate(ctx context.Context, id, date string) (models.SessionResponse, error)
}

// NewSelectFromHandler selects the source currency.
// @Summary Select source currency
// @Description Selecting a different source currency fetches its rates. An empty code clears the selection.
// @Tags selection
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.SelectCurrencyRequest true "Currency"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{id}/from [put]
func NewSelectFromHandler(svc SelectionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SelectCurrencyRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		respond(w, r, func() (models.SessionResponse, error) {
			return svc.SelectFrom(r.Context(), chi.URLParam(r, "id"), req.Code)
		})
	}
}

// NewSelectToHandler selects the target currency.
// @Summary Select target currency
// @Description Never fetches. An empty code clears the selection.
// @Tags selection
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.SelectCurrencyRequest true "Currency"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{id}/to [put]
func NewSelectToHandler(svc SelectionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SelectCurrencyRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		respond(w, r, func() (models.SessionResponse, error) {
			return svc.SelectTo(r.Context(), chi.URLParam(r, "id"), req.Code)
		})
	}
}

// NewSetAmountHandler sets the amount.
// @Summary Set amount
// @Description Free text; anything that is not a number counts as 0
// @Tags selection
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.AmountRequest true "Amount"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{id}/amount [put]
func NewSetAmountHandler(svc SelectionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AmountRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		respond(w, r, func() (models.SessionResponse, error) {
			return svc.SetAmount(r.Context(), chi.URLParam(r, "id"), req.Amount)
		})
	}
}

// NewSetModeHandler switches between latest and historical rates.
// @Summary Set mode
// @Tags selection
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.ModeRequest true "Mode"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{id}/mode [put]
func NewSetModeHandler(svc SelectionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ModeRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		respond(w, r, func() (models.SessionResponse, error) {
			return svc.SetMode(r.Context(), chi.URLParam(r, "id"), req.Mode)
		})
	}
}

// NewSetHistoryDateHandler sets the date used in history mode.
// @Summary Set history date
// @Description Does not fetch; call refresh to load the rates of the new date
// @Tags selection
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.HistoryDateRequest true "Date"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{id}/date [put]
func NewSetHistoryDateHandler(svc SelectionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.HistoryDateRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		respond(w, r, func() (models.SessionResponse, error) {
			return svc.SetHistoryDate(r.Context(), chi.URLParam(r, "id"), req.Date)
		})
	}
}

func respond(w http.ResponseWriter, r *http.Request, call func() (models.SessionResponse, error)) {
	resp, err := call()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
