package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolconnect/school-connect/internal/academic"
	"github.com/schoolconnect/school-connect/internal/common"
)

type gpaReq struct {
	Grades []academic.Grade `json:"grades"`
}

func (h *Handler) CalculateGPA(c *gin.Context) {
	var req gpaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}
	common.OK(c, gin.H{"gpa": academic.CalculateGPA(req.Grades)})
}

func (h *Handler) FormatMLACitation(c *gin.Context) {
	var req academic.Citation
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}
	common.OK(c, gin.H{"citation": academic.FormatMLA(req)})
}

func (h *Handler) GetAcademicResources(c *gin.Context) {
	common.OK(c, academic.Resources())
}
