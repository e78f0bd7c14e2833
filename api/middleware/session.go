package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/daleelbalady/storefront-gateway/pkg/config"
	"github.com/daleelbalady/storefront-gateway/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

// Session resolves the caller's session id from the cookie or the
// X-Session-Id header, minting a fresh one for first-time visitors. The id
// is echoed on both channels so SPA and non-browser clients can hold it.
func Session(cfg config.SessionConfig, secure bool, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				sessionID = cookie.Value
			}
			if sessionID == "" {
				sessionID = r.Header.Get(sessionIDHeader)
			}
			if sessionID == "" || uuid.Validate(sessionID) != nil {
				sessionID = uuid.NewString()
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cfg.CookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(cfg.TTL.Seconds()),
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(sessionIDHeader, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
