package ws

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Evento is the envelope pushed to connected terminals.
type Evento struct {
	Evento string      `json:"evento"`
	Data   interface{} `json:"data"`
}

// Hub fans out real-time events (new sales, stock alerts) to every connected
// POS terminal.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Terminals connect from the frontend origin; auth runs before
			// the upgrade.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request and keeps the socket registered until
// the client disconnects.
func (h *Hub) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("no se pudo establecer la conexión websocket")
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	total := len(h.clients)
	h.mu.Unlock()
	log.Debug().Int("conexiones", total).Msg("terminal conectada")

	// Drain incoming frames; the hub only pushes.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// Broadcast sends the event to all connected terminals. Dead connections are
// dropped on write failure.
func (h *Hub) Broadcast(evento string, payload interface{}) {
	msg := Evento{Evento: evento, Data: payload}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(msg); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Conexiones reports the number of live terminals (health endpoint).
func (h *Hub) Conexiones() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
