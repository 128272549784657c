package handlers

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

//go:embed templates/page.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

// pageWaitTimeout bounds how long a page render waits for the in-flight fetch.
const pageWaitTimeout = 3 * time.Second

// PageSessions is everything the converter page does with a session.
//
//go:generate mockgen -source page.go -destination mock_page.go -package handlers
type PageSessions interface {
	SessionCreator
	SessionViewer
	SessionRefresher
	SelectionUpdater
}

// CurrencyLister lists every currency offered by the pickers.
type CurrencyLister interface {
	All() []models.Currency
}

type pageData struct {
	Session    models.SessionResponse
	Currencies []models.Currency
	AmountText string
	Notice     string
	Today      string
}

// NewPageHandler serves the converter page. GET renders the session, POST applies the submitted form first.
// A missing or expired session is replaced by a new one carried in a cookie.
func NewPageHandler(
	svc PageSessions,
	currencies CurrencyLister,
	sessionIDGetter func(ctx context.Context) (string, bool),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := pageSession(ctx, svc, sessionIDGetter)
		if err != nil {
			logger.Log.Errorw("failed to open session for page", "request_id", requestID(r), "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     models.SessionCookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		status := http.StatusOK
		var notice string
		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "invalid form", http.StatusBadRequest)
				return
			}
			if err := applyForm(ctx, svc, id, r.PostForm); err != nil {
				if !isInputError(err) {
					logger.Log.Errorw("failed to apply form", "request_id", requestID(r), "session_id", id, "error", err)
					http.Error(w, "Internal server error", http.StatusInternalServerError)
					return
				}
				status = http.StatusBadRequest
				notice = err.Error()
			}
		}

		waitCtx, cancel := context.WithTimeout(ctx, pageWaitTimeout)
		defer cancel()
		resp, err := svc.View(waitCtx, id, true)
		if err != nil {
			logger.Log.Errorw("failed to load session for page", "request_id", requestID(r), "session_id", id, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		data := pageData{
			Session:    resp,
			Currencies: currencies.All(),
			Notice:     notice,
			Today:      time.Now().Format(models.HistoryDateLayout),
		}
		if resp.Selection.Amount != 0 {
			data.AmountText = strconv.FormatFloat(resp.Selection.Amount, 'f', -1, 64)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if err := pageTemplate.Execute(w, data); err != nil {
			logger.Log.Errorw("failed to render page", "request_id", requestID(r), "session_id", id, "error", err)
		}
	}
}

// pageSession returns the id of the caller's session, creating one when it is missing or expired.
func pageSession(ctx context.Context, svc PageSessions, sessionIDGetter func(ctx context.Context) (string, bool)) (string, error) {
	if id, ok := sessionIDGetter(ctx); ok && id != "" {
		_, err := svc.View(ctx, id, false)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, services.ErrSessionNotFound) {
			return "", err
		}
	}
	resp, err := svc.Create(ctx)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}

// applyForm applies the submitted fields. The date goes before the mode so that
// switching to history with a date fetches that date.
func applyForm(ctx context.Context, svc PageSessions, id string, form url.Values) error {
	steps := []struct {
		field string
		apply func(string) error
	}{
		{"amount", func(v string) error { _, err := svc.SetAmount(ctx, id, v); return err }},
		{"to", func(v string) error { _, err := svc.SelectTo(ctx, id, v); return err }},
		{"date", func(v string) error {
			if v == "" {
				return nil
			}
			_, err := svc.SetHistoryDate(ctx, id, v)
			return err
		}},
		{"mode", func(v string) error { _, err := svc.SetMode(ctx, id, v); return err }},
		{"from", func(v string) error { _, err := svc.SelectFrom(ctx, id, v); return err }},
	}
	for _, step := range steps {
		if !form.Has(step.field) {
			continue
		}
		if err := step.apply(form.Get(step.field)); err != nil {
			return err
		}
	}

	if form.Get("action") == "refresh" {
		_, err := svc.Refresh(ctx, id)
		return err
	}
	return nil
}
