package handler

import (
	"net/http"
	"strconv"

	"OM_Profiles/internal/middleware"
	"OM_Profiles/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BookmarkHandler struct {
	svc *service.BookmarkService
}

func NewBookmarkHandler(db *gorm.DB) *BookmarkHandler {
	return &BookmarkHandler{svc: service.NewBookmarkService(db)}
}

func (h *BookmarkHandler) Toggle(c *gin.Context) {
	uid := middleware.UserID(c)
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	bookmarked, err := h.svc.Toggle(c.Request.Context(), uid, pid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "bookmarked": bookmarked})
}

func (h *BookmarkHandler) List(c *gin.Context) {
	uid := middleware.UserID(c)
	ids, err := h.svc.ListIDs(c.Request.Context(), uid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "profile_ids": ids})
}
