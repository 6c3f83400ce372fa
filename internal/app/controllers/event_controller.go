package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/sportsmeet/internal/app/models"
	"github.com/yigit/sportsmeet/internal/app/models/dto"
	"github.com/yigit/sportsmeet/internal/app/services"
	"github.com/yigit/sportsmeet/internal/middleware"
	"github.com/yigit/sportsmeet/internal/pkg/apperrors"
)

// EventController handles listing and organizer CRUD for events
type EventController struct {
	eventService services.EventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		logger:       logger,
	}
}

// ListEvents purges past events and lists the rest, optionally filtered by ?q=
func (c *EventController) ListEvents(ctx *gin.Context) {
	query := ctx.Query("q")

	cards, err := c.eventService.ListEvents(ctx, query)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	middleware.RenderPage(ctx, http.StatusOK, "events.html", gin.H{
		"Title": "Events",
		"Cards": cards,
		"Query": query,
	})
}

// AddEventForm renders the empty event form
func (c *EventController) AddEventForm(ctx *gin.Context) {
	c.renderEventForm(ctx, "add_events.html", nil, dto.EventForm{}, nil)
}

// AddEvent creates an event organized by the current user
func (c *EventController) AddEvent(ctx *gin.Context) {
	var form dto.EventForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		c.renderEventForm(ctx, "add_events.html", nil, form, dto.NewFormErrors(err, &form))
		return
	}

	if _, err := c.eventService.CreateEvent(ctx, currentUserID(ctx), &form); err != nil {
		if apperrors.Is(err, apperrors.ErrValidationFailed) {
			c.renderEventForm(ctx, "add_events.html", nil, form, dto.NewFormErrors(err, &form))
			return
		}
		middleware.HandlePageError(ctx, err)
		return
	}

	redirectWithMessage(ctx, "/events/", MsgEventAdded)
}

// EditEventForm renders the event form pre-filled for its organizer
func (c *EventController) EditEventForm(ctx *gin.Context) {
	eventID, ok := eventIDParam(ctx)
	if !ok {
		return
	}

	event, err := c.eventService.GetEventForEdit(ctx, eventID, currentUserID(ctx))
	if err != nil {
		c.handleOwnershipError(ctx, err, MsgNotAllowedEdit)
		return
	}

	c.renderEventForm(ctx, "edit_event.html", event, dto.NewEventForm(event), nil)
}

// EditEvent saves the organizer's changes
func (c *EventController) EditEvent(ctx *gin.Context) {
	eventID, ok := eventIDParam(ctx)
	if !ok {
		return
	}
	userID := currentUserID(ctx)

	event, err := c.eventService.GetEventForEdit(ctx, eventID, userID)
	if err != nil {
		c.handleOwnershipError(ctx, err, MsgNotAllowedEdit)
		return
	}

	var form dto.EventForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		c.renderEventForm(ctx, "edit_event.html", event, form, dto.NewFormErrors(err, &form))
		return
	}

	if _, err := c.eventService.UpdateEvent(ctx, eventID, userID, &form); err != nil {
		if apperrors.Is(err, apperrors.ErrValidationFailed) {
			c.renderEventForm(ctx, "edit_event.html", event, form, dto.NewFormErrors(err, &form))
			return
		}
		c.handleOwnershipError(ctx, err, MsgNotAllowedEdit)
		return
	}

	redirectWithMessage(ctx, "/my_events/", MsgEventUpdated)
}

// DeleteEventConfirm asks the organizer to confirm the deletion
func (c *EventController) DeleteEventConfirm(ctx *gin.Context) {
	eventID, ok := eventIDParam(ctx)
	if !ok {
		return
	}

	event, err := c.eventService.GetEventForEdit(ctx, eventID, currentUserID(ctx))
	if err != nil {
		c.handleOwnershipError(ctx, err, MsgNotAllowedDelete)
		return
	}

	middleware.RenderPage(ctx, http.StatusOK, "delete_event.html", gin.H{
		"Title": "Delete event",
		"Event": event,
	})
}

// DeleteEvent deletes the event and, through the cascade, its participation records
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	eventID, ok := eventIDParam(ctx)
	if !ok {
		return
	}

	if err := c.eventService.DeleteEvent(ctx, eventID, currentUserID(ctx)); err != nil {
		c.handleOwnershipError(ctx, err, MsgNotAllowedDelete)
		return
	}

	redirectWithMessage(ctx, "/my_events/", MsgEventDeleted)
}

// MyEvents lists the events organized by the current user
func (c *EventController) MyEvents(ctx *gin.Context) {
	events, err := c.eventService.EventsByOrganizer(ctx, currentUserID(ctx))
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	middleware.RenderPage(ctx, http.StatusOK, "my_events.html", gin.H{
		"Title":  "My events",
		"Events": events,
	})
}

// handleOwnershipError redirects non-organizers back to their events and renders other failures
func (c *EventController) handleOwnershipError(ctx *gin.Context, err error, msg string) {
	if apperrors.Is(err, apperrors.ErrPermissionDenied) {
		c.logger.Warn().
			Str("path", ctx.Request.URL.Path).
			Int64("userID", currentUserID(ctx)).
			Msg("Rejected change to an event the user does not organize")
		redirectWithMessage(ctx, "/my_events/", msg)
		return
	}
	middleware.HandlePageError(ctx, err)
}

func (c *EventController) renderEventForm(ctx *gin.Context, page string, event *models.Event, form dto.EventForm, errs dto.FormErrors) {
	if errs == nil {
		errs = dto.FormErrors{}
	}
	title := "Add event"
	if event != nil {
		title = "Edit event"
	}
	middleware.RenderPage(ctx, http.StatusOK, page, gin.H{
		"Title":  title,
		"Event":  event,
		"Form":   form,
		"Errors": errs,
	})
}
