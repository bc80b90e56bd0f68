package websocket

import (
	"sync"
)

// Registration lifecycle event types pushed to connected admin panels.
const (
	EventBusinessSubmitted   = "business_submitted"
	EventBusinessApproved    = "business_approved"
	EventBusinessRejected    = "business_rejected"
	EventBusinessActivated   = "business_activated"
	EventBusinessDeactivated = "business_deactivated"
)

// Event is a message sent over WebSocket to the admin panel
type Event struct {
	Type    string      `json:"type"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Hub maintains the set of connected admin panels and broadcasts
// registration lifecycle events to all of them.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			client.Conn.Close()
		}
	}
}

// Broadcast queues an event for every connected panel. Each connection
// has a single writer goroutine draining its queue, since gorilla
// connections allow only one concurrent writer. A client whose queue is
// full misses the event rather than blocking the caller.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- event:
		default:
		}
	}
}
