package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

type sessionIDKey struct{}

// SessionMiddleware resolves the conversion session of a browser request from the
// X-Session-ID header or, failing that, the session cookie.
// Requests without one pass through; the page handler starts a new session for them.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(models.SessionHeader)
		if id == "" {
			if c, err := r.Cookie(models.SessionCookieName); err == nil {
				id = c.Value
			}
		}
		if id != "" {
			r = r.WithContext(context.WithValue(r.Context(), sessionIDKey{}, id))
		}
		next.ServeHTTP(w, r)
	})
}

// SessionIDFromContext returns the session id resolved by SessionMiddleware.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey{}).(string)
	return id, ok && id != ""
}
