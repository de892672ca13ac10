package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/schoolconnect/school-connect/internal/common"
	"github.com/schoolconnect/school-connect/internal/models"
	"github.com/schoolconnect/school-connect/internal/schools"
)

func (h *Handler) GetSchools(c *gin.Context) {
	common.OK(c, schools.All())
}

type registerReq struct {
	Name       string                 `json:"name" binding:"required"`
	Email      string                 `json:"email" binding:"required"`
	SchoolID   string                 `json:"school_id" binding:"required"`
	SchoolType string                 `json:"school_type" binding:"required"`
	GradeLevel string                 `json:"grade_level"`
	Classes    []models.ClassSchedule `json:"classes"`
}

// Register creates the user and makes sure their school-wide chat room exists
// with them as a member.
func (h *Handler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	user := models.User{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		SchoolID:   req.SchoolID,
		SchoolType: req.SchoolType,
		GradeLevel: req.GradeLevel,
		Classes:    req.Classes,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.Store.InsertUser(c.Request.Context(), &user); err != nil {
		log.Printf("[register] insert user email=%s: %v", req.Email, err)
		common.Fail(c, http.StatusInternalServerError, 20001, "failed to create user")
		return
	}

	roomID, err := h.ChatSvc.EnsureSchoolRoom(c.Request.Context(), req.SchoolID, req.SchoolType, user.ID)
	if err != nil {
		log.Printf("[register] ensure school room school=%s user=%s: %v", req.SchoolID, user.ID, err)
		common.Fail(c, http.StatusInternalServerError, 20002, "failed to set up school room")
		return
	}

	common.OK(c, gin.H{
		"user_id":        user.ID,
		"school_room_id": roomID,
	})
}

type classmateView struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	GradeLevel    string   `json:"grade_level"`
	SharedClasses []string `json:"shared_classes"`
}

// GetClassmates lists users at the same school with overlapping class
// subjects, annotated with which subjects they share.
func (h *Handler) GetClassmates(c *gin.Context) {
	userID := c.Param("user_id")

	user, err := h.Store.FindUser(c.Request.Context(), userID)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 20001, "db error")
		return
	}
	if user == nil {
		common.Fail(c, http.StatusNotFound, 40401, "user not found")
		return
	}

	subjects := make([]string, 0, len(user.Classes))
	subjectSet := make(map[string]bool, len(user.Classes))
	for _, cls := range user.Classes {
		subjects = append(subjects, cls.Subject)
		subjectSet[cls.Subject] = true
	}
	if len(subjects) == 0 {
		common.OK(c, []classmateView{})
		return
	}

	classmates, err := h.Store.FindClassmates(c.Request.Context(), user.SchoolID, userID, subjects)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 20001, "db error")
		return
	}

	out := make([]classmateView, 0, len(classmates))
	for _, cm := range classmates {
		var shared []string
		for _, cls := range cm.Classes {
			if subjectSet[cls.Subject] {
				shared = append(shared, cls.Subject)
			}
		}
		out = append(out, classmateView{
			ID:            cm.ID,
			Name:          cm.Name,
			GradeLevel:    cm.GradeLevel,
			SharedClasses: shared,
		})
	}
	common.OK(c, out)
}
