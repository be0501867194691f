package server

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// wsMessage is the envelope pushed to display clients. Type is "sample",
// "result", or "error".
type wsMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// handleWebSocket upgrades the connection and registers the client for
// trajectory streaming. The read loop exists only to detect disconnects;
// clients are not expected to send anything.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	s.wsMu.Lock()
	s.wsClients[conn] = true
	s.wsMu.Unlock()

	s.log.Debug().Str("remote", conn.RemoteAddr().String()).Msg("display client connected")

	go func() {
		defer s.dropClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// dropClient unregisters and closes a client connection.
func (s *Server) dropClient(conn *websocket.Conn) {
	s.wsMu.Lock()
	delete(s.wsClients, conn)
	s.wsMu.Unlock()
	conn.Close()
}

// broadcast pushes a message to every connected display client, dropping
// clients whose writes fail.
func (s *Server) broadcast(msg wsMessage) {
	s.wsMu.Lock()
	defer s.wsMu.Unlock()

	for conn := range s.wsClients {
		if err := conn.WriteJSON(msg); err != nil {
			delete(s.wsClients, conn)
			conn.Close()
		}
	}
}
