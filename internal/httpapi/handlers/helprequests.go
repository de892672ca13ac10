package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/schoolconnect/school-connect/internal/common"
	"github.com/schoolconnect/school-connect/internal/models"
)

type createHelpRequestReq struct {
	UserID      string   `json:"user_id" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Subject     string   `json:"subject" binding:"required"`
	Description string   `json:"description" binding:"required"`
	ImageURLs   []string `json:"image_urls"`
}

// CreateHelpRequest stores a help request. Attachments arrive as opaque URLs
// already placed in blob storage; this service never touches file contents.
func (h *Handler) CreateHelpRequest(c *gin.Context) {
	var req createHelpRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	hr := models.HelpRequest{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Title:       req.Title,
		Subject:     req.Subject,
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
		Responses:   []models.HelpResponse{},
		Status:      "open",
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.Store.InsertHelpRequest(c.Request.Context(), &hr); err != nil {
		common.Fail(c, http.StatusInternalServerError, 20001, "failed to create help request")
		return
	}
	common.OK(c, gin.H{"request_id": hr.ID})
}

type helpRequestView struct {
	models.HelpRequest
	UserName   string `json:"user_name"`
	UserSchool string `json:"user_school"`
}

// ListHelpRequests returns help requests newest first, joined with requester
// info. Requests whose author no longer resolves are dropped; a school_id
// filter keeps only requests from that school.
func (h *Handler) ListHelpRequests(c *gin.Context) {
	userID := c.Query("user_id")
	schoolID := c.Query("school_id")

	requests, err := h.Store.ListHelpRequests(c.Request.Context(), userID)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 20001, "db error")
		return
	}

	out := make([]helpRequestView, 0, len(requests))
	for _, hr := range requests {
		user, err := h.Store.FindUser(c.Request.Context(), hr.UserID)
		if err != nil || user == nil {
			continue
		}
		if schoolID != "" && user.SchoolID != schoolID {
			continue
		}
		out = append(out, helpRequestView{
			HelpRequest: hr,
			UserName:    user.Name,
			UserSchool:  user.SchoolID,
		})
	}
	common.OK(c, out)
}

type respondReq struct {
	UserID  string `json:"user_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *Handler) RespondToHelpRequest(c *gin.Context) {
	requestID := c.Param("request_id")

	var req respondReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	resp := models.HelpResponse{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	found, err := h.Store.AppendHelpResponse(c.Request.Context(), requestID, resp)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 20001, "db error")
		return
	}
	if !found {
		common.Fail(c, http.StatusNotFound, 40403, "help request not found")
		return
	}
	common.OK(c, gin.H{"response_id": resp.ID})
}
