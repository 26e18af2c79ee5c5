package handler

import (
	"net/http"
	"strconv"

	"OM_Profiles/internal/middleware"
	"OM_Profiles/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RatingHandler struct {
	svc *service.RatingService
}

func NewRatingHandler(db *gorm.DB) *RatingHandler {
	return &RatingHandler{svc: service.NewRatingService(db)}
}

func (h *RatingHandler) Submit(c *gin.Context) {
	uid := middleware.UserID(c)
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req struct {
		Value int `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 1, "msg": err.Error()})
		return
	}
	sum, err := h.svc.Submit(c.Request.Context(), pid, uid, req.Value)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":          0,
		"avg_rating":    sum.AvgRating,
		"total_ratings": sum.TotalRatings,
		"display":       sum.Display(),
	})
}

// Mine 回显当前用户给该档案打的分
func (h *RatingHandler) Mine(c *gin.Context) {
	uid := middleware.UserID(c)
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	v, err := h.svc.UserRating(c.Request.Context(), pid, uid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "value": v})
}
