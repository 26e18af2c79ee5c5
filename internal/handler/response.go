package handler

import (
	"errors"
	"net/http"

	"OM_Profiles/internal/pkg"

	"github.com/gin-gonic/gin"
)

// fail 错误分类映射到状态码，错误原样透传给前端，这一层不做兜底恢复
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, pkg.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, pkg.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, pkg.ErrAuthorization):
		status = http.StatusForbidden
	case errors.Is(err, pkg.ErrCascade):
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"code": 1, "msg": err.Error()})
}
