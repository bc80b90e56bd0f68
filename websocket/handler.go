package websocket

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client represents a connected admin panel. Events are queued on send
// and written by a single goroutine per connection.
type Client struct {
	AdminID string
	Conn    *websocket.Conn
	send    chan Event
}

// writeLoop is the connection's only writer. It exits when the hub
// closes the queue or the peer goes away.
func (c *Client) writeLoop() {
	for event := range c.send {
		if err := c.Conn.WriteJSON(event); err != nil {
			return
		}
	}
}

// HandleWebSocket upgrades the connection for an authenticated admin
// and keeps it registered until the peer goes away.
func HandleWebSocket(c echo.Context, hub *Hub, adminID string) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &Client{
		AdminID: adminID,
		Conn:    conn,
		send:    make(chan Event, 16),
	}

	hub.register <- client
	go client.writeLoop()

	client.send <- Event{
		Type:    "connected",
		Message: "WebSocket connection established",
	}

	go func() {
		defer func() {
			hub.unregister <- client
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()

	return nil
}
