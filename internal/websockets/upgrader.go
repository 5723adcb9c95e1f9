package websockets

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/pizza-nz/backoffice-service/internal/logging"
)

// NewUpgrader returns the upgrader for the change feed. An empty
// allowedOrigins list accepts any origin.
func NewUpgrader(allowedOrigins []string) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin(allowedOrigins),
		Error: func(w http.ResponseWriter, r *http.Request, status int, reason error) {
			logging.Warn().Err(reason).Int("status", status).Str("remote", r.RemoteAddr).Msg("websocket upgrade failed")
			http.Error(w, reason.Error(), status)
		},
	}
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}

	set := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		set[origin] = struct{}{}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
