package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/schoolconnect/school-connect/internal/chat"
	"github.com/schoolconnect/school-connect/internal/common"
)

func failChatErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrRoomNotFound):
		common.Fail(c, http.StatusNotFound, 40404, "room not found")
	case errors.Is(err, chat.ErrValidation):
		common.Fail(c, http.StatusBadRequest, 10002, err.Error())
	default:
		common.Fail(c, http.StatusInternalServerError, 20001, "db error")
	}
}

type createRoomReq struct {
	Name      string   `json:"name" binding:"required"`
	Kind      string   `json:"kind" binding:"required"`
	SchoolID  string   `json:"school_id"`
	Members   []string `json:"members"`
	CreatorID string   `json:"creator_id" binding:"required"`
}

func (h *Handler) CreateChatRoom(c *gin.Context) {
	var req createRoomReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	roomID, err := h.ChatSvc.CreateRoom(c.Request.Context(), req.Name, chat.RoomKind(req.Kind), req.SchoolID, req.Members, req.CreatorID)
	if err != nil {
		failChatErr(c, err)
		return
	}
	common.OK(c, gin.H{"room_id": roomID})
}

func (h *Handler) ListChatRooms(c *gin.Context) {
	userID := c.Param("user_id")
	rooms, err := h.ChatSvc.ListRoomsForUser(c.Request.Context(), userID)
	if err != nil {
		failChatErr(c, err)
		return
	}
	common.OK(c, rooms)
}

type membershipReq struct {
	UserID string `json:"user_id" binding:"required"`
}

func (h *Handler) JoinChatRoom(c *gin.Context) {
	var req membershipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}
	if err := h.ChatSvc.Join(c.Request.Context(), c.Param("room_id"), req.UserID); err != nil {
		failChatErr(c, err)
		return
	}
	common.OK(c, gin.H{"room_id": c.Param("room_id")})
}

func (h *Handler) LeaveChatRoom(c *gin.Context) {
	var req membershipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}
	if err := h.ChatSvc.Leave(c.Request.Context(), c.Param("room_id"), req.UserID); err != nil {
		failChatErr(c, err)
		return
	}
	common.OK(c, gin.H{"room_id": c.Param("room_id")})
}

type sendMessageReq struct {
	RoomID      string   `json:"room_id" binding:"required"`
	SenderID    string   `json:"sender_id" binding:"required"`
	Body        string   `json:"body"`
	Kind        string   `json:"kind"`
	Attachments []string `json:"attachments"`
}

// SendChatMessage persists the message and fans it out to the room's live
// sessions. Success means the write stuck; live delivery is best effort.
func (h *Handler) SendChatMessage(c *gin.Context) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	msgID, err := h.ChatSvc.Send(c.Request.Context(), req.RoomID, req.SenderID, req.Body, chat.MessageKind(req.Kind), req.Attachments)
	if err != nil {
		failChatErr(c, err)
		return
	}
	common.OK(c, gin.H{"message_id": msgID})
}

func (h *Handler) ListChatMessages(c *gin.Context) {
	roomID := c.Param("room_id")

	var limit int64
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			limit = n
		}
	}

	msgs, err := h.ChatSvc.ListMessages(c.Request.Context(), roomID, limit)
	if err != nil {
		failChatErr(c, err)
		return
	}
	common.OK(c, gin.H{"messages": msgs})
}
