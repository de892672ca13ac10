package ws

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/schoolconnect/school-connect/internal/chat"
)

var upgrader = websocket.Upgrader{
	HandshakeTimeout: 10 * time.Second,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler accepts real-time sessions keyed by (room, user) and keeps the
// connection registry in sync with their lifecycle.
type Handler struct {
	registry *chat.Registry
}

func NewHandler(registry *chat.Registry) *Handler {
	return &Handler{registry: registry}
}

// Handle upgrades GET /api/ws/:room_id/:user_id. The channel is accepted
// unconditionally; a later handshake for the same user displaces this one.
func (h *Handler) Handle(c *gin.Context) {
	roomID := c.Param("room_id")
	userID := c.Param("user_id")
	if roomID == "" || userID == "" {
		c.String(http.StatusBadRequest, "room_id and user_id required")
		return
	}

	sock, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed user=%s room=%s: %v", userID, roomID, err)
		return
	}

	conn := NewConn(sock)
	h.registry.Register(userID, conn, roomID)
	log.Printf("[ws] connected user=%s room=%s", userID, roomID)

	conn.ReadUntilClose()

	h.registry.Unregister(userID, conn)
	_ = conn.Close()
	log.Printf("[ws] disconnected user=%s room=%s", userID, roomID)
}
