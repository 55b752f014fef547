package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/luckyseven/casino/internal/logging"
	"github.com/luckyseven/casino/pkg/entities"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// PlayMessage is pushed to every connected client when a play resolves
type PlayMessage struct {
	Type     string              `json:"type"`
	PlayerID string              `json:"player_id"`
	Game     entities.GameType   `json:"game"`
	Result   entities.GameResult `json:"result"`
}

// Hub tracks websocket clients and fans play results out to them
type Hub struct {
	clients map[*websocket.Conn]bool
	mu      sync.Mutex
	logger  *logging.Logger
}

// NewHub creates an empty hub
func NewHub(logger *logging.Logger) *Hub {
	if logger == nil {
		logger = logging.Default
	}
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		logger:  logger,
	}
}

// ClientCount reports how many clients are currently connected
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// BroadcastPlay sends a resolved play to every connected client
func (h *Hub) BroadcastPlay(playerID string, game entities.GameType, result *entities.GameResult) {
	msg := PlayMessage{
		Type:     "PLAY_RESULT",
		PlayerID: playerID,
		Game:     game,
		Result:   *result,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("Failed to encode play message: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			// Drop clients we can no longer write to
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Serve upgrades the request and keeps the connection registered until the
// client goes away
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade to websocket: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
