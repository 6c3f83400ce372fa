package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yigit/sportsmeet/internal/app/models"
	"github.com/yigit/sportsmeet/internal/app/models/dto"
	"github.com/yigit/sportsmeet/internal/pkg/apperrors"
)

// RenderPage renders a template with the data every page needs: the signed-in user, the
// status message carried in ?message= and the sport choices.
func RenderPage(c *gin.Context, status int, name string, data gin.H) {
	page := gin.H{
		"User":        CurrentUsername(c),
		"LoggedIn":    CurrentUsername(c) != "",
		"Message":     c.Query("message"),
		"Sports":      models.SportChoices,
		"CurrentPath": c.Request.URL.Path,
		"Errors":      dto.FormErrors{},
	}
	for k, v := range data {
		page[k] = v
	}
	c.HTML(status, name, page)
}

// RenderError renders the error page for status
func RenderError(c *gin.Context, status int) {
	name := "500.html"
	switch status {
	case http.StatusNotFound:
		name = "404.html"
	case http.StatusForbidden:
		name = "403.html"
	}
	RenderPage(c, status, name, nil)
	c.Abort()
}

// HandlePageError maps service errors onto error pages
func HandlePageError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrEventNotFound, apperrors.ErrUserNotFound):
		RenderError(c, http.StatusNotFound)
	case apperrors.Is(err, apperrors.ErrPermissionDenied):
		RenderError(c, http.StatusForbidden)
	default:
		_ = c.Error(err)
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		RenderError(c, http.StatusInternalServerError)
	}
}

// NotFound renders the 404 page for unknown routes
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		RenderError(c, http.StatusNotFound)
	}
}
