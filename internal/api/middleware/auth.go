package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/brawlops/brawlsquad/internal/api/apierr"
	"github.com/brawlops/brawlsquad/internal/model"
	"github.com/brawlops/brawlsquad/internal/token"
)

type contextKey string

const brawlerContextKey contextKey = "brawler_id"

// SessionCookieName is the cookie carrying the bearer credential on the
// cookie surface
const SessionCookieName = "squad_session"

// Auth creates the authorization gate. Requests must carry a verifiable
// bearer credential in the Authorization header or the session cookie;
// each surface verifies against its own codec so the two secrets can
// differ. Any failure rejects the request before the handler runs.
func Auth(headerCodec, cookieCodec *token.Codec) func(http.Handler) http.Handler {
	if cookieCodec == nil {
		cookieCodec = headerCodec
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, fromCookie := extractToken(r)
			if raw == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			codec := headerCodec
			if fromCookie {
				codec = cookieCodec
			}

			// All verification failures look the same to the caller
			claims, err := codec.Verify(raw)
			if err != nil {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}
			if claims.Subject == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			ctx := context.WithValue(r.Context(), brawlerContextKey, model.BrawlerID(claims.Subject))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken pulls the bearer credential from the request, trying the
// Authorization header first and the session cookie second
func extractToken(r *http.Request) (raw string, fromCookie bool) {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), false
	}

	cookie, err := r.Cookie(SessionCookieName)
	if err == nil {
		return cookie.Value, true
	}

	return "", false
}

// GetBrawlerID returns the authenticated brawler from the request context
func GetBrawlerID(ctx context.Context) (model.BrawlerID, bool) {
	id, ok := ctx.Value(brawlerContextKey).(model.BrawlerID)
	return id, ok
}

// MustGetBrawlerID returns the authenticated brawler or panics
func MustGetBrawlerID(ctx context.Context) model.BrawlerID {
	id, ok := GetBrawlerID(ctx)
	if !ok {
		panic("no brawler in context - auth middleware not applied?")
	}
	return id
}
