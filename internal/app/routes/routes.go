package routes

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sportsmeet/internal/app/controllers"
	"github.com/yigit/sportsmeet/internal/middleware"
	"github.com/yigit/sportsmeet/internal/pkg/websocket"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Page          *controllers.PageController
	Event         *controllers.EventController
	Participation *controllers.ParticipationController
	Auth          *controllers.AuthController
	Dashboard     *controllers.DashboardController
	Contact       *controllers.ContactController
	Live          *websocket.Handler
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware, static fs.FS) {
	router.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})
	router.StaticFS("/static", http.FS(static))
	router.GET("/ws/events/", c.Live.HandleConnection)

	pages := router.Group("")
	pages.Use(authMiddleware.SessionAuth())
	{
		// Public pages
		pages.GET("/", c.Page.Home)
		pages.GET("/events/", c.Event.ListEvents)

		pages.GET("/contact/", c.Contact.ContactForm)
		pages.POST("/contact/", c.Contact.Submit)

		pages.GET("/register/", c.Auth.RegisterForm)
		pages.POST("/register/", c.Auth.Register)
		pages.GET("/user_login/", c.Auth.LoginForm)
		pages.POST("/user_login/", c.Auth.Login)
		pages.POST("/logout/", c.Auth.Logout)

		// Login-required pages
		members := pages.Group("")
		members.Use(authMiddleware.LoginRequired())
		{
			members.GET("/add_events/", c.Event.AddEventForm)
			members.POST("/add_events/", c.Event.AddEvent)
			members.GET("/edit_event/:id/", c.Event.EditEventForm)
			members.POST("/edit_event/:id/", c.Event.EditEvent)
			members.GET("/delete_event/:id/", c.Event.DeleteEventConfirm)
			members.POST("/delete_event/:id/", c.Event.DeleteEvent)
			members.GET("/my_events/", c.Event.MyEvents)

			members.GET("/join_event/:id/", c.Participation.JoinEventForm)
			members.POST("/join_event/:id/", c.Participation.JoinEvent)
			members.GET("/cancel_joined_event/:id/", c.Participation.CancelConfirm)
			members.POST("/cancel_joined_event/:id/", c.Participation.Cancel)

			members.GET("/dashboard/", c.Dashboard.Dashboard)
			members.GET("/organizer_dashboard/", c.Dashboard.OrganizerDashboard)
		}
	}

	router.NoRoute(authMiddleware.SessionAuth(), middleware.NotFound())
}
