package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/schoolconnect/school-connect/internal/ai"
	"github.com/schoolconnect/school-connect/internal/common"
)

type assistantReq struct {
	Prompt  string `json:"prompt" binding:"required"`
	Subject string `json:"subject"`
	UserID  string `json:"user_id"`
}

// AskAssistant answers synchronously. The assistant never errors toward the
// user; a provider failure yields the local fallback text.
func (h *Handler) AskAssistant(c *gin.Context) {
	var req assistantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}
	reply := h.Assistant.Respond(c.Request.Context(), req.Subject, req.Prompt)
	common.OK(c, gin.H{"response": reply})
}

// AskAssistantAsync queues the question as a job for the worker and returns
// the job id for polling.
func (h *Handler) AskAssistantAsync(c *gin.Context) {
	var req assistantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}
	if h.Rabbit == nil {
		common.Fail(c, http.StatusServiceUnavailable, 50301, "async assistant is disabled")
		return
	}

	jobID, err := common.NewULID()
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 20003, "internal error")
		return
	}

	now := time.Now().UTC()
	job := &ai.Job{
		ID:        jobID,
		UserID:    req.UserID,
		Subject:   req.Subject,
		Prompt:    req.Prompt,
		Status:    ai.JobQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.Store.InsertJob(c.Request.Context(), job); err != nil {
		log.Printf("[assistant] insert job id=%s: %v", jobID, err)
		common.Fail(c, http.StatusInternalServerError, 20001, "failed to create job")
		return
	}
	if err := h.Rabbit.PublishJob(c.Request.Context(), jobID); err != nil {
		log.Printf("[assistant] publish job id=%s: %v", jobID, err)
		common.Fail(c, http.StatusInternalServerError, 50002, "enqueue failed")
		return
	}
	common.OK(c, gin.H{"job_id": jobID})
}

func (h *Handler) GetAssistantJob(c *gin.Context) {
	jobID := c.Param("job_id")

	job, err := h.Store.FindJob(c.Request.Context(), jobID)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 20001, "db error")
		return
	}
	if job == nil {
		common.Fail(c, http.StatusNotFound, 40405, "job not found")
		return
	}
	common.OK(c, gin.H{"job": job})
}
