package handler

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/pizza-nz/backoffice-service/internal/api"
	"github.com/pizza-nz/backoffice-service/internal/middleware"
	"github.com/pizza-nz/backoffice-service/internal/websockets"
)

// WebSocketHandler attaches logged-in dashboards to the change feed.
// Browsers cannot set headers on a websocket handshake, so the session
// token travels in the query string.
type WebSocketHandler struct {
	hub      *websockets.Hub
	resolver middleware.SessionResolver
	upgrader *websocket.Upgrader
}

func NewWebSocketHandler(hub *websockets.Hub, resolver middleware.SessionResolver, upgrader *websocket.Upgrader) *WebSocketHandler {
	return &WebSocketHandler{
		hub:      hub,
		resolver: resolver,
		upgrader: upgrader,
	}
}

func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		api.Unauthorized(w, "token is required")
		return
	}

	sess, err := h.resolver.Resolve(token)
	if err != nil {
		api.Unauthorized(w, "invalid or expired session")
		return
	}

	// Upgrade the HTTP connection to a WebSocket connection
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// If upgrading fails, the upgrader has already written the error to the response
		return
	}

	websockets.ServeWs(h.hub, conn, sess.ID.String(), sess.Username)
}
