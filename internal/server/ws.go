package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// LandmarksHandler pushes every newly adopted detection result to connected
// WebSocket clients. The frame loop feeds it through Broadcast, so clients
// see exactly the sequence of results the viewer itself rendered.
type LandmarksHandler struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewLandmarksHandler creates a LandmarksHandler with no clients.
func NewLandmarksHandler() *LandmarksHandler {
	return &LandmarksHandler{
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *LandmarksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Broadcast sends the result to all connected clients. Safe to call from the
// detection completion goroutine; write errors only disconnect the affected
// client on its next read.
func (h *LandmarksHandler) Broadcast(result detector.Result) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.clients) == 0 {
		return
	}

	msg, err := json.Marshal(result)
	if err != nil {
		return
	}

	for conn := range h.clients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
}
