package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/sportsmeet/internal/app/services"
	"github.com/yigit/sportsmeet/internal/middleware"
)

// PageController serves the home page
type PageController struct {
	eventService services.EventService
	logger       zerolog.Logger
}

// NewPageController creates a new PageController
func NewPageController(eventService services.EventService, logger zerolog.Logger) *PageController {
	return &PageController{
		eventService: eventService,
		logger:       logger,
	}
}

// Home renders the landing page with a few upcoming events
func (c *PageController) Home(ctx *gin.Context) {
	events, err := c.eventService.FeaturedEvents(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	middleware.RenderPage(ctx, http.StatusOK, "index.html", gin.H{
		"Events": events,
	})
}
