package websockets

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/pizza-nz/backoffice-service/internal/logging"
	"github.com/pizza-nz/backoffice-service/internal/metrics"
)

// Change actions carried by collection.changed events.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// ChangeEvent tells dashboards which record changed so they can re-read it.
type ChangeEvent struct {
	Collection string `json:"collection"`
	Action     string `json:"action"`
	ID         string `json:"id"`
}

type Hub struct {
	clients map[*Client]bool

	register chan *Client

	unregister chan *Client

	broadcast chan []byte

	count chan chan int

	disconnect chan string

	done chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		count:      make(chan chan int),
		disconnect: make(chan string),
		done:       make(chan struct{}),
	}
}

// Notify queues a collection.changed event for every connected client.
// It never blocks a request; when the queue is full the event is dropped.
func (h *Hub) Notify(collection, action, id string) {
	data, err := json.Marshal(ChangeEvent{Collection: collection, Action: action, ID: id})
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal change event")
		return
	}

	message, err := json.Marshal(Message{Type: TypeCollectionChanged, Data: data})
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal change message")
		return
	}

	select {
	case h.broadcast <- message:
	default:
		logging.Warn().Str("collection", collection).Str("action", action).Msg("change feed queue full, event dropped")
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients(ctx context.Context) int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-ctx.Done():
		return 0
	case <-h.done:
		return 0
	}
}

// Disconnect closes every client connected under the given session.
func (h *Hub) Disconnect(sessionID string) {
	select {
	case h.disconnect <- sessionID:
	case <-h.done:
	}
}

// Run serves registrations and broadcasts until ctx is done, then closes
// every client.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for client := range h.clients {
			h.drop(client)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.clients[client] = true
			metrics.WebsocketClients.Set(float64(len(h.clients)))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					logging.Warn().Str("session_id", client.sessionID).Str("username", client.username).Msg("dropping slow websocket client")
					h.drop(client)
				}
			}
		case sessionID := <-h.disconnect:
			for client := range h.clients {
				if client.sessionID == sessionID {
					logging.Debug().Str("session_id", sessionID).Str("username", client.username).Msg("closing websocket of ended session")
					h.drop(client)
				}
			}
		case reply := <-h.count:
			reply <- len(h.clients)
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
	metrics.WebsocketClients.Set(float64(len(h.clients)))
}
