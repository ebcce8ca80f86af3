package middleware

import (
	"context"
	"net/http"

	"github.com/barbershop-express/booking-web/internal/session"
	"github.com/barbershop-express/booking-web/pkg/logging"
)

// SessionReader is the slice of the session store the guard needs.
type SessionReader interface {
	Get(ctx context.Context, sessionID string) (session.Data, error)
}

// RequireAdmin guards the console. Every admin page and mutation passes
// through here, so a logged-out browser can neither render nor post.
// Unauthenticated requests are redirected to the login gate.
func RequireAdmin(sessions SessionReader, logger *logging.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := session.IDFromRequest(r)
			data, err := sessions.Get(r.Context(), sessionID)
			if err != nil {
				logger.Error("admin guard: session lookup failed", "error", err)
				http.Redirect(w, r, "/admin", http.StatusSeeOther)
				return
			}
			if !data.Admin {
				http.Redirect(w, r, "/admin", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
