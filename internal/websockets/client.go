package websockets

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/pizza-nz/backoffice-service/internal/logging"
)

const (
	writeWait = 10 * time.Second

	pongWait = 60 * time.Second

	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4 * 1024
)

type MessageType string

const (
	TypeCollectionChanged MessageType = "collection.changed"
	TypeError             MessageType = "error"
	TypePing              MessageType = "ping"
	TypePong              MessageType = "pong"
)

type Message struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	// replies is owned by the client and never closed, unlike send.
	replies chan []byte

	sessionID string
	username  string
}

func NewClient(hub *Hub, conn *websocket.Conn, sessionID, username string) *Client {
	return &Client{
		hub:       hub,
		conn:      conn,
		send:      make(chan []byte, 256),
		replies:   make(chan []byte, 8),
		sessionID: sessionID,
		username:  username,
	}
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Warn().Err(err).Str("session_id", c.sessionID).Str("username", c.username).Msg("websocket closed unexpectedly")
			}
			break
		}

		var wsMessage Message
		if err := json.Unmarshal(message, &wsMessage); err != nil {
			logging.Debug().Err(err).Str("username", c.username).Msg("ignoring malformed websocket message")
			c.reply(Message{Type: TypeError, Data: json.RawMessage(`{"error":"malformed message"}`)})
			continue
		}

		// The feed is server-to-client; ping is the only client message.
		switch wsMessage.Type {
		case TypePing:
			c.reply(Message{Type: TypePong})
		default:
			logging.Debug().Str("type", string(wsMessage.Type)).Str("username", c.username).Msg("ignoring websocket message")
		}
	}
}

// reply queues a message for this client only.
func (c *Client) reply(msg Message) {
	out, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.replies <- out:
	default:
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case reply := <-c.replies:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, reply); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ServeWs registers a connection with the hub and starts its pumps.
func ServeWs(hub *Hub, conn *websocket.Conn, sessionID, username string) {
	client := NewClient(hub, conn, sessionID, username)

	select {
	case hub.register <- client:
	case <-hub.done:
		conn.Close()
		return
	}

	logging.Debug().Str("session_id", sessionID).Str("username", username).Msg("websocket client connected")

	go client.writePump()
	go client.readPump()
}
