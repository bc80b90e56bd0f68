package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerForTest(h *Hub, client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()
}

func TestBroadcastQueuesForEveryClient(t *testing.T) {
	h := NewHub()
	first := &Client{AdminID: "a", send: make(chan Event, 4)}
	second := &Client{AdminID: "b", send: make(chan Event, 4)}
	registerForTest(h, first)
	registerForTest(h, second)

	h.Broadcast(Event{Type: EventBusinessApproved, Message: "Bay Cafe was approved"})

	for _, client := range []*Client{first, second} {
		select {
		case event := <-client.send:
			assert.Equal(t, EventBusinessApproved, event.Type)
			assert.Equal(t, "Bay Cafe was approved", event.Message)
		default:
			t.Fatalf("client %s has no queued event", client.AdminID)
		}
	}
}

func TestBroadcastDropsWhenClientQueueFull(t *testing.T) {
	h := NewHub()
	client := &Client{AdminID: "a", send: make(chan Event, 1)}
	registerForTest(h, client)

	h.Broadcast(Event{Type: EventBusinessSubmitted})
	// Queue is full now; this must not block
	h.Broadcast(Event{Type: EventBusinessRejected})

	event := <-client.send
	require.Equal(t, EventBusinessSubmitted, event.Type)

	select {
	case extra := <-client.send:
		t.Fatalf("expected overflow event to be dropped, got %s", extra.Type)
	default:
	}
}
