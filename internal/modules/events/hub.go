package events

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans booking events out to connected observers (notification
// workers, dashboards). Observers are anonymous: every event goes to every
// connection.
type Hub struct {
	connections map[*websocket.Conn]struct{}
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.connections[conn] = struct{}{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, exists := h.connections[conn]; exists {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

// Broadcast writes the event to every connection, dropping the ones that
// fail. A slow or dead observer never fails the transition that produced
// the event.
func (h *Hub) Broadcast(message interface{}) {
	h.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(h.connections))
	for conn := range h.connections {
		conns = append(conns, conn)
	}
	h.mutex.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(message); err != nil {
			h.Unregister(conn)
		}
	}
}

func (h *Hub) ObserverCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for conn := range h.connections {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}
