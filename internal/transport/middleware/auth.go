package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/seo-review-backend/pkg/ctxutil"
)

// TokenValidator resolves a session token to the caller identity.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (ctxutil.Identity, error)
}

// Auth resolves the session token from the Authorization header or, failing
// that, the named cookie. Requests without a valid token continue anonymously
// so a stale cookie never blocks login, logout or health checks; RequireAuth
// rejects them on protected routes.
func Auth(validator TokenValidator, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				token = extractCookieToken(r, cookieName)
			}
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			identity, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := ctxutil.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.IdentityFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}

func extractCookieToken(r *http.Request, name string) string {
	if name == "" {
		return ""
	}
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
