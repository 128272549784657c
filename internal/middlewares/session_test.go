package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

func TestSessionMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		cookie   string
		expected string
		found    bool
	}{
		{name: "NoSession", found: false},
		{name: "Header", header: "h-1", expected: "h-1", found: true},
		{name: "Cookie", cookie: "c-1", expected: "c-1", found: true},
		{name: "HeaderWins", header: "h-2", cookie: "c-2", expected: "h-2", found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				gotID    string
				gotFound bool
			)
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, gotFound = SessionIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(models.SessionHeader, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: models.SessionCookieName, Value: tt.cookie})
			}
			rr := httptest.NewRecorder()

			SessionMiddleware(nextHandler).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.found, gotFound)
			assert.Equal(t, tt.expected, gotID)
		})
	}
}
