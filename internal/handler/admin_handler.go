package handler

import (
	"net/http"
	"strconv"

	"OM_Profiles/internal/middleware"
	"OM_Profiles/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminHandler 挂在 AdminMiddleware 之后，进来的都是管理员
type AdminHandler struct {
	moderation *service.ModerationService
	profiles   *service.ProfileService
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{
		moderation: service.NewModerationService(db),
		profiles:   service.NewProfileService(db),
	}
}

func (h *AdminHandler) ToggleVisibility(c *gin.Context) {
	uid := middleware.UserID(c)
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	visible, err := h.moderation.ToggleVisibility(c.Request.Context(), pid, uid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "visible": visible})
}

func (h *AdminHandler) ToggleFeatured(c *gin.Context) {
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	featured, err := h.moderation.ToggleFeatured(c.Request.Context(), pid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "featured": featured})
}

// DismissReports 驳回举报：清空该档案的举报并恢复可见
func (h *AdminHandler) DismissReports(c *gin.Context) {
	uid := middleware.UserID(c)
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.moderation.DismissReports(c.Request.Context(), pid, uid); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0})
}

func (h *AdminHandler) ListReports(c *gin.Context) {
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	list, err := h.moderation.ListReports(c.Request.Context(), pid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "reports": list})
}

func (h *AdminHandler) DeleteProfile(c *gin.Context) {
	uid := middleware.UserID(c)
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.moderation.DeleteProfile(c.Request.Context(), pid, uid); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0})
}

func (h *AdminHandler) BanUser(c *gin.Context) {
	uid, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.moderation.BanUser(c.Request.Context(), uid); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0})
}

func (h *AdminHandler) Users(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	list, err := h.moderation.ListUsers(c.Request.Context(), offset, limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "users": list})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.profiles.Stats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "stats": stats})
}

func (h *AdminHandler) TopProfiles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	list, err := h.profiles.TopByDownloads(c.Request.Context(), limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "profiles": list})
}
