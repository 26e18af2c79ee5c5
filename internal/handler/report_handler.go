package handler

import (
	"net/http"
	"strconv"

	"OM_Profiles/internal/middleware"
	"OM_Profiles/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	svc *service.ModerationService
}

func NewReportHandler(svc *service.ModerationService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) File(c *gin.Context) {
	uid := middleware.UserID(c)
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req struct {
		Reason      string `json:"reason" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 1, "msg": err.Error()})
		return
	}
	report, err := h.svc.FileReport(c.Request.Context(), pid, uid, req.Reason, req.Description)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "report": report})
}
