package socket

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks the connected operator WebSocket clients.
type Hub struct {
	// clients maps operator id to connection.
	clients map[string]*websocket.Conn
	mu      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(operatorID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[operatorID] = conn
	log.Printf("WebSocket client registered: %s", operatorID)
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(operatorID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[operatorID]; ok {
		delete(h.clients, operatorID)
		log.Printf("WebSocket client unregistered: %s", operatorID)
	}
}

// Send delivers a message to one client. A missing client is not an
// error, they may simply be offline.
func (h *Hub) Send(operatorID string, message []byte) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conn, ok := h.clients[operatorID]
	if !ok {
		log.Printf("WebSocket client not found, could not send message: %s", operatorID)
		return nil
	}

	return conn.WriteMessage(websocket.TextMessage, message)
}

// Broadcast delivers a message to every connected client. Booking events
// address all operators, not a single user.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for operatorID, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket send to %s failed: %v", operatorID, err)
		}
	}
}
