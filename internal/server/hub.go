package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(_ *http.Request) bool { return true },
}

// hub maintains the set of connected websocket clients and broadcasts state
// updates to them.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func newHub() *hub {
	return &hub{clients: make(map[*websocket.Conn]bool)}
}

func (h *hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
	h.mu.Unlock()
}

func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// send writes v to one client under the hub lock, so it cannot interleave
// with a broadcast on the same connection.
func (h *hub) send(conn *websocket.Conn, v any) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return conn.WriteJSON(v)
}

// broadcast sends v to every client, dropping clients whose writes fail.
func (h *hub) broadcast(v any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(v); err != nil {
			log.WithError(err).Debug("dropping websocket client")
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// serveWs upgrades the connection, sends the current state immediately, and
// keeps the client registered until it disconnects.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("websocket upgrade failed")
		return
	}

	s.hub.add(conn)
	if err := s.hub.send(conn, s.snapshot()); err != nil {
		s.hub.remove(conn)
		return
	}

	go func() {
		defer s.hub.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
