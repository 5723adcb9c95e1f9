package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pizza-nz/backoffice-service/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver map[string]*session.Session

func (s stubResolver) Resolve(token string) (*session.Session, error) {
	sess, ok := s[token]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return sess, nil
}

func TestAuth(t *testing.T) {
	sess := session.New()
	require.NoError(t, sess.LogIn("alice", time.Now()))
	resolver := stubResolver{"good": sess}

	var seen *session.Session
	h := Auth(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetSession(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"unknown token", "Bearer bad", http.StatusUnauthorized},
		{"valid token", "Bearer good", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, "/api/menu/items", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusNoContent {
				require.NotNil(t, seen)
				assert.Equal(t, "alice", seen.Username)
			} else {
				assert.Nil(t, seen)
				assert.Contains(t, rec.Body.String(), `"error"`)
			}
		})
	}
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/api/menu/items/{id}", RouteLabel("/api/menu/items/665f1c2e8b3e4a0012345678"))
	assert.Equal(t, "/api/menu/items", RouteLabel("/api/menu/items"))
	assert.Equal(t, "/api/staff/positions", RouteLabel("/api/staff/positions"))
}

func TestLoggerCapturesStatus(t *testing.T) {
	h := Metrics(Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
