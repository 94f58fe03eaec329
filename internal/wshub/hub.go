package wshub

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"deadlytruth/internal/events"

	"github.com/coder/websocket"
)

// Client represents a single WebSocket connection in the hub. Slot is the
// room roster position the connection holds, 0 for observers.
type Client struct {
	ID   string
	Slot int
	Conn *websocket.Conn
	Send chan []byte
}

// WritePump reads from the Send channel and writes to the WebSocket
// connection. Run it in its own goroutine; it exits when the channel closes
// or the connection dies.
func (c *Client) WritePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.Send:
			if !ok {
				return
			}
			if err := c.Conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// Hub tracks which live connections belong to which room and fans messages
// out to them. It references connections, it does not own them: each
// session handler registers its client on connect and deregisters it on
// disconnect.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[string]*Client
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[string]*Client),
	}
}

// Register adds a client to a room's connection set.
func (h *Hub) Register(roomID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.rooms[roomID]
	if !ok {
		clients = make(map[string]*Client)
		h.rooms[roomID] = clients
	}
	clients[c.ID] = c
}

// Deregister removes a client, closes its Send channel, and prunes the room
// entry when it was the last connection. Returns the number of connections
// left in the room.
func (h *Hub) Deregister(roomID, clientID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.rooms[roomID]
	if !ok {
		return 0
	}
	if c, exists := clients[clientID]; exists {
		close(c.Send)
		delete(clients, clientID)
	}
	if len(clients) == 0 {
		delete(h.rooms, roomID)
		return 0
	}
	return len(clients)
}

// Count returns the number of live connections in a room.
func (h *Hub) Count(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

// Broadcast sends an event to every connection in a room. The event is
// marshaled once, so every recipient sees identical bytes. Delivery to a
// stalled connection is dropped rather than blocking the others.
func (h *Hub) Broadcast(roomID string, ev events.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[Hub] Marshal error: %v\n", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.rooms[roomID] {
		select {
		case c.Send <- data:
		default:
			log.Printf("[Hub] Room %s: dropping message to slow client %s\n", roomID, c.ID)
		}
	}
}

// SendTo delivers an event to a single client, with the same drop policy as
// Broadcast.
func (h *Hub) SendTo(c *Client, ev events.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[Hub] Marshal error: %v\n", err)
		return
	}
	select {
	case c.Send <- data:
	default:
		log.Printf("[Hub] Dropping message to slow client %s\n", c.ID)
	}
}
