package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vedran77/arbiter/internal/auth"
)

type contextKey string

const identityKey contextKey = "identity"

// Auth extracts and verifies the bearer token and attaches the resolved
// identity to the request context. On any failure the wrapped handler never
// runs.
func Auth(tokens *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, `{"error":{"code":"UNAUTHORIZED","message":"Missing or invalid token"}}`, http.StatusUnauthorized)
				return
			}

			identity, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, `{"error":{"code":"UNAUTHORIZED","message":"Invalid or expired token"}}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity extracts the authenticated identity from the request context.
// Only valid behind the Auth middleware.
func GetIdentity(ctx context.Context) auth.Identity {
	return ctx.Value(identityKey).(auth.Identity)
}
