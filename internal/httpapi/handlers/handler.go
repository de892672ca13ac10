package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/schoolconnect/school-connect/internal/ai"
	"github.com/schoolconnect/school-connect/internal/chat"
	"github.com/schoolconnect/school-connect/internal/common"
	"github.com/schoolconnect/school-connect/internal/config"
	"github.com/schoolconnect/school-connect/internal/store/mongostore"
	"github.com/schoolconnect/school-connect/internal/store/rabbitmq"
)

// Handler bundles the dependencies of every HTTP endpoint. Simple CRUD goes
// straight to the store; chat goes through the chat service so membership and
// dispatch invariants hold on every path.
type Handler struct {
	Store     *mongostore.Store
	Cfg       config.Config
	ChatSvc   *chat.Service
	Assistant *ai.Assistant
	Rabbit    *rabbitmq.Publisher // nil when the async assistant path is disabled
}

func NewHandler(store *mongostore.Store, cfg config.Config, chatSvc *chat.Service, assistant *ai.Assistant, rabbit *rabbitmq.Publisher) *Handler {
	return &Handler{
		Store:     store,
		Cfg:       cfg,
		ChatSvc:   chatSvc,
		Assistant: assistant,
		Rabbit:    rabbit,
	}
}

func (h *Handler) Ping(c *gin.Context) {
	common.OK(c, gin.H{"pong": true})
}
