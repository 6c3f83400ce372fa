// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sportsmeet/internal/middleware"
	"github.com/yigit/sportsmeet/internal/pkg/helpers"
)

// Status messages carried to the next page through ?message=
const (
	MsgEventAdded       = "Event added successfully!"
	MsgEventUpdated     = "Event updated successfully!"
	MsgEventDeleted     = "Event deleted successfully!"
	MsgNotAllowedEdit   = "You are not allowed to edit this event."
	MsgNotAllowedDelete = "You are not allowed to delete this event."
	MsgAlreadyJoined    = "You have already joined this event."
	MsgEventFull        = "Event is full. Cannot join."
	MsgJoinedPrefix     = "You successfully joined the event: "
	MsgNotJoined        = "You have not joined this event."
	MsgCancelledPrefix  = "You have cancelled your participation in: "
	MsgAccountCreated   = "Account created successfully! Please log in."
	MsgLoggedIn         = "Logged in successfully!"
	MsgLoggedOut        = "Logged out."
	MsgContactSent      = "Thank you! Your message has been sent."
)

// redirectWithMessage sends a 302 to path carrying msg
func redirectWithMessage(ctx *gin.Context, path, msg string) {
	ctx.Redirect(http.StatusFound, helpers.WithMessage(path, msg))
}

// eventIDParam reads the :id path parameter. Invalid IDs render the 404 page.
func eventIDParam(ctx *gin.Context) (int64, bool) {
	id, ok := helpers.ParseID(ctx.Param("id"))
	if !ok {
		middleware.RenderError(ctx, http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// currentUserID returns the signed-in user. Routes behind LoginRequired always have one.
func currentUserID(ctx *gin.Context) int64 {
	id, _ := middleware.CurrentUserID(ctx)
	return id
}
