package resp

import (
	"net/http"

	"canteen/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Error maps the service error taxonomy onto HTTP statuses.
func Error(c *gin.Context, err error) {
	switch {
	case apperr.IsNotFound(err):
		NotFound(c, err.Error())
	case apperr.IsInvalidRequest(err):
		BadRequest(c, err.Error())
	case apperr.IsUnauthorized(err):
		Forbidden(c, err.Error())
	case apperr.IsPolicyViolation(err):
		Conflict(c, err.Error())
	default:
		ServerError(c, err)
	}
}
