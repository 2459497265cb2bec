// Package events broadcasts change notifications to connected websocket
// listeners. Every listener is bound to an authenticated user and only
// receives events for that user's own records. Delivery is best-effort:
// slow or dead clients are dropped, nothing is queued or retried.
package events

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
)

// Event types published by the handlers
const (
	ResourceCreated    = "resource.created"
	ResourceUpdated    = "resource.updated"
	ResourceDeleted    = "resource.deleted"
	ProductionAppended = "production.appended"
)

// Event is the wire format pushed to listeners
type Event struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// envelope carries a marshaled event together with the id of the user
// whose listeners may see it
type envelope struct {
	owner string
	data  []byte
}

// Hub maintains the set of active clients and fans events out to the
// listeners of the owning user. The clients map is only touched inside
// Run, so no locking is needed.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan envelope
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan envelope, 64),
		clients:    make(map[*Client]bool),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			logrus.Debugf("event listener connected: %s (user %s)", client.id, client.userID)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				logrus.Debugf("event listener disconnected: %s", client.id)
			}

		case env := <-h.broadcast:
			for client := range h.clients {
				// Tenant isolation: only the owner's listeners see the event
				if client.userID != env.owner {
					continue
				}
				select {
				case client.send <- env.data:
				default:
					// Buffer full or client dead, drop it
				}
			}
		}
	}
}

// Publish fans an event out to the listeners of the given owner. It
// never blocks the calling request: when the hub is saturated the
// event is dropped.
func (h *Hub) Publish(owner, eventType string, payload interface{}) {
	msg, err := json.Marshal(Event{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
	if err != nil {
		logrus.Warnf("events: marshal failed: %v", err)
		return
	}

	select {
	case h.broadcast <- envelope{owner: owner, data: msg}:
	default:
	}
}
