package api

import (
	"context"
	"net/http"
	"time"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/logger"
)

// SessionCookieName is the cookie the login handler sets and the session
// middleware reads.
const SessionCookieName = "mh_session"

type contextKey int

const actingAdminKey contextKey = iota

// ActingAdmin returns the admin resolved by RequireSession, or nil outside an
// authenticated request.
func ActingAdmin(ctx context.Context) *domain.AdminAccount {
	admin, _ := ctx.Value(actingAdminKey).(*domain.AdminAccount)
	return admin
}

// RequireSession resolves the session cookie to a live admin account and puts
// it on the request context. The account is re-read per request, so a
// suspension takes effect on the very next call.
func (s *Server) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			writeError(w, domain.ErrUnauthenticated)
			return
		}

		admin, err := s.authSvc.CurrentSession(r.Context(), cookie.Value)
		if err != nil {
			clearSessionCookie(w)
			writeError(w, domain.ErrUnauthenticated)
			return
		}

		ctx := context.WithValue(r.Context(), actingAdminKey, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("request handled",
			"method", r.Method, "path", r.URL.Path, "duration_ms", time.Since(start).Milliseconds())
	})
}

func setSessionCookie(w http.ResponseWriter, token string, expiresOn time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresOn,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
