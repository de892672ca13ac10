package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/schoolconnect/school-connect/internal/common"
	"github.com/schoolconnect/school-connect/internal/models"
)

type createAssignmentReq struct {
	UserID      string    `json:"user_id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Subject     string    `json:"subject" binding:"required"`
	DueDate     time.Time `json:"due_date" binding:"required"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
}

func (h *Handler) CreateAssignment(c *gin.Context) {
	var req createAssignmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	priority := req.Priority
	switch priority {
	case "":
		priority = "medium"
	case "low", "medium", "high":
	default:
		common.Fail(c, http.StatusBadRequest, 10002, "priority must be low, medium or high")
		return
	}

	a := models.Assignment{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Title:       req.Title,
		Subject:     req.Subject,
		DueDate:     req.DueDate,
		Description: req.Description,
		Priority:    priority,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.Store.InsertAssignment(c.Request.Context(), &a); err != nil {
		common.Fail(c, http.StatusInternalServerError, 20001, "failed to create assignment")
		return
	}
	common.OK(c, gin.H{"assignment_id": a.ID})
}

func (h *Handler) ListAssignments(c *gin.Context) {
	userID := c.Param("user_id")
	out, err := h.Store.ListAssignmentsByUser(c.Request.Context(), userID)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 20001, "db error")
		return
	}
	common.OK(c, out)
}

type updateAssignmentReq struct {
	Title       *string    `json:"title"`
	Subject     *string    `json:"subject"`
	DueDate     *time.Time `json:"due_date"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	Priority    *string    `json:"priority"`
}

// UpdateAssignment applies a partial update. Unknown fields are rejected by
// the typed request body rather than written through.
func (h *Handler) UpdateAssignment(c *gin.Context) {
	id := c.Param("assignment_id")

	var req updateAssignmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Subject != nil {
		fields["subject"] = *req.Subject
	}
	if req.DueDate != nil {
		fields["due_date"] = *req.DueDate
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Completed != nil {
		fields["completed"] = *req.Completed
	}
	if req.Priority != nil {
		switch *req.Priority {
		case "low", "medium", "high":
			fields["priority"] = *req.Priority
		default:
			common.Fail(c, http.StatusBadRequest, 10002, "priority must be low, medium or high")
			return
		}
	}
	if len(fields) == 0 {
		common.Fail(c, http.StatusBadRequest, 10003, "no fields to update")
		return
	}

	found, err := h.Store.UpdateAssignment(c.Request.Context(), id, fields)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 20001, "db error")
		return
	}
	if !found {
		common.Fail(c, http.StatusNotFound, 40402, "assignment not found")
		return
	}
	common.OK(c, gin.H{"assignment_id": id})
}
