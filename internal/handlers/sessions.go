package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// SessionCreator starts new conversion views.
//
//go:generate mockgen -source sessions.go -destination mock_sessions.go -package handlers
type SessionCreator interface {
	Create(ctx context.Context) (models.SessionResponse, error)
}

// SessionViewer returns the state of a conversion view.
type SessionViewer interface {
	View(ctx context.Context, id string, wait bool) (models.SessionResponse, error)
}

// SessionDeleter drops conversion views.
type SessionDeleter interface {
	Delete(ctx context.Context, id string) error
}

// SessionRefresher re-issues the rate fetch of a conversion view.
type SessionRefresher interface {
	Refresh(ctx context.Context, id string) (models.SessionResponse, error)
}

// NewCreateSessionHandler handles new conversion views.
// @Summary Create session
// @Description Starts a conversion view in latest mode with nothing selected
// @Tags sessions
// @Produce json
// @Success 201 {object} models.SessionResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /sessions [post]
func NewCreateSessionHandler(svc SessionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := svc.Create(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

// NewGetSessionHandler returns the current selection and presentation.
// @Summary Get session
// @Description Returns the selection and the derived result. With wait=true the call first waits for the in-flight rate fetch.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param wait query bool false "Wait for the in-flight fetch"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{id} [get]
func NewGetSessionHandler(svc SessionViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wait := false
		if v := r.URL.Query().Get("wait"); v != "" {
			var err error
			if wait, err = strconv.ParseBool(v); err != nil {
				writeError(w, http.StatusBadRequest, "invalid wait parameter")
				return
			}
		}

		resp, err := svc.View(r.Context(), chi.URLParam(r, "id"), wait)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewDeleteSessionHandler drops a conversion view.
// @Summary Delete session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 500 {object} models.ErrorResponse
// @Router /sessions/{id} [delete]
func NewDeleteSessionHandler(svc SessionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewRefreshSessionHandler re-issues the fetch for the current selection.
// @Summary Refresh rates
// @Description Fetches the rates of the selected source currency again
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 202 {object} models.SessionResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{id}/refresh [post]
func NewRefreshSessionHandler(svc SessionRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := svc.Refresh(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusAccepted, resp)
	}
}
