package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"OM_Profiles/internal/middleware"
	"OM_Profiles/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ProfileHandler struct {
	svc        *service.ProfileService
	engagement *service.EngagementService
}

func NewProfileHandler(db *gorm.DB, rdb *redis.Client) *ProfileHandler {
	return &ProfileHandler{
		svc:        service.NewProfileService(db),
		engagement: service.NewEngagementService(db, rdb),
	}
}

func (h *ProfileHandler) Create(c *gin.Context) {
	uid := middleware.UserID(c)
	var in service.CreateProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 1, "msg": err.Error()})
		return
	}
	p, err := h.svc.Create(c.Request.Context(), uid, &in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "profile": p})
}

// Catalog 目录页：游标分页 + 筛选面板 + 搜索词，只吐可见档案
func (h *ProfileHandler) Catalog(c *gin.Context) {
	lastID, _ := strconv.ParseUint(c.Query("last_id"), 10, 64)
	var lastCreatedAt time.Time
	if ts, err := strconv.ParseInt(c.Query("last_ts"), 10, 64); err == nil && ts > 0 {
		lastCreatedAt = time.Unix(ts, 0)
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	minRating, _ := strconv.ParseFloat(c.DefaultQuery("min_rating", "0"), 64)

	f := service.Filters{
		CameraModel:        c.DefaultQuery("camera_model", service.FilterAll),
		Category:           c.DefaultQuery("category", service.FilterAll),
		MinRating:          minRating,
		LightingConditions: c.DefaultQuery("lighting", service.FilterAll),
	}
	if tags := strings.TrimSpace(c.Query("tags")); tags != "" {
		f.Tags = service.SplitTags(tags)
	}

	list, err := h.svc.Catalog(c.Request.Context(), lastID, lastCreatedAt, limit, f, c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "profiles": list})
}

func (h *ProfileHandler) Detail(c *gin.Context) {
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	p, err := h.svc.Detail(c.Request.Context(), pid)
	if err != nil {
		fail(c, err)
		return
	}
	imgs, err := h.svc.Images(c.Request.Context(), pid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "profile": p, "images": imgs})
}

// View 详情页打开时上报，按会话去重
func (h *ProfileHandler) View(c *gin.Context) {
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	sessionID := c.GetHeader("X-Session-ID")
	if err := h.engagement.RecordView(c.Request.Context(), sessionID, pid); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0})
}

// Download 下载完成后上报，每次都计
func (h *ProfileHandler) Download(c *gin.Context) {
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.engagement.RecordDownload(c.Request.Context(), pid); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0})
}

func (h *ProfileHandler) Mine(c *gin.Context) {
	uid := middleware.UserID(c)
	list, err := h.svc.ListByOwner(c.Request.Context(), uid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "profiles": list})
}

func (h *ProfileHandler) AddComment(c *gin.Context) {
	uid := middleware.UserID(c)
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 1, "msg": err.Error()})
		return
	}
	cm, err := h.svc.AddComment(c.Request.Context(), pid, uid, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "comment": cm})
}

func (h *ProfileHandler) Comments(c *gin.Context) {
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	list, err := h.svc.Comments(c.Request.Context(), pid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "comments": list})
}
