package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/sportsmeet/internal/app/services"
	"github.com/yigit/sportsmeet/internal/middleware"
)

// DashboardController serves the signed-in user's overviews
type DashboardController struct {
	dashboardService services.DashboardService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Dashboard shows organized events with their rosters and the events the user joined
func (c *DashboardController) Dashboard(ctx *gin.Context) {
	dashboard, err := c.dashboardService.Dashboard(ctx, currentUserID(ctx))
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	middleware.RenderPage(ctx, http.StatusOK, "dashboard.html", gin.H{
		"Title":     "Dashboard",
		"Dashboard": dashboard,
	})
}

// OrganizerDashboard shows every join info of the user's events, cancelled ones included
func (c *DashboardController) OrganizerDashboard(ctx *gin.Context) {
	rosters, err := c.dashboardService.Rosters(ctx, currentUserID(ctx))
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	middleware.RenderPage(ctx, http.StatusOK, "organizer_dashboard.html", gin.H{
		"Title":   "Organizer dashboard",
		"Rosters": rosters,
	})
}
