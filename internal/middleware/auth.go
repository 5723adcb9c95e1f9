// internal/middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pizza-nz/backoffice-service/internal/api"
	"github.com/pizza-nz/backoffice-service/internal/logging"
	"github.com/pizza-nz/backoffice-service/internal/session"
)

// contextKey is a type for context keys
type contextKey string

// SessionKey holds the resolved *session.Session of an authenticated request
const SessionKey contextKey = "session"

// SessionResolver turns a bearer token into a live session
type SessionResolver interface {
	Resolve(token string) (*session.Session, error)
}

// Auth middleware gates a handler on a logged-in session
func Auth(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Get the Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				api.Unauthorized(w, "authorization header required")
				return
			}

			// Check if it's a Bearer token
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				api.Unauthorized(w, "invalid authorization header format")
				return
			}

			sess, err := resolver.Resolve(parts[1])
			if err != nil {
				logging.Debug().Err(err).Str("path", r.URL.Path).Msg("session rejected")
				api.Unauthorized(w, "invalid or expired session")
				return
			}

			ctx := WithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithSession returns a context carrying sess
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, SessionKey, sess)
}

// GetSession returns the session placed in the context by Auth
func GetSession(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*session.Session)
	return sess, ok
}
