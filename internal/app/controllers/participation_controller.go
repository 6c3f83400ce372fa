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

// ParticipationController handles joining and cancelling
type ParticipationController struct {
	participationService services.ParticipationService
	logger               zerolog.Logger
}

// NewParticipationController creates a new ParticipationController
func NewParticipationController(participationService services.ParticipationService, logger zerolog.Logger) *ParticipationController {
	return &ParticipationController{
		participationService: participationService,
		logger:               logger,
	}
}

// JoinEventForm shows the join form unless the event is full or already joined
func (c *ParticipationController) JoinEventForm(ctx *gin.Context) {
	eventID, ok := eventIDParam(ctx)
	if !ok {
		return
	}
	userID := currentUserID(ctx)

	event, err := c.participationService.CheckJoinable(ctx, eventID, userID)
	if err != nil {
		c.handleJoinError(ctx, err)
		return
	}

	form, err := c.participationService.PrefillJoinForm(ctx, userID)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	c.renderJoinForm(ctx, event, *form, nil)
}

// JoinEvent records the participation and the submitted contact details
func (c *ParticipationController) JoinEvent(ctx *gin.Context) {
	eventID, ok := eventIDParam(ctx)
	if !ok {
		return
	}
	userID := currentUserID(ctx)

	event, err := c.participationService.CheckJoinable(ctx, eventID, userID)
	if err != nil {
		c.handleJoinError(ctx, err)
		return
	}

	var form dto.JoinForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		c.renderJoinForm(ctx, event, form, dto.NewFormErrors(err, &form))
		return
	}

	event, err = c.participationService.Join(ctx, eventID, userID, &form)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrEmailMismatch) {
			c.renderJoinForm(ctx, event, form, dto.NewFormErrors(err, &form))
			return
		}
		c.handleJoinError(ctx, err)
		return
	}

	redirectWithMessage(ctx, "/events/", MsgJoinedPrefix+event.Name)
}

// CancelConfirm asks the participant to confirm leaving the event
func (c *ParticipationController) CancelConfirm(ctx *gin.Context) {
	eventID, ok := eventIDParam(ctx)
	if !ok {
		return
	}

	event, err := c.participationService.JoinedEvent(ctx, eventID, currentUserID(ctx))
	if err != nil {
		c.handleCancelError(ctx, err)
		return
	}

	middleware.RenderPage(ctx, http.StatusOK, "cancel_event.html", gin.H{
		"Title": "Cancel participation",
		"Event": event,
	})
}

// Cancel removes the participation. The join info stays for the organizer's roster.
func (c *ParticipationController) Cancel(ctx *gin.Context) {
	eventID, ok := eventIDParam(ctx)
	if !ok {
		return
	}

	event, err := c.participationService.Cancel(ctx, eventID, currentUserID(ctx))
	if err != nil {
		c.handleCancelError(ctx, err)
		return
	}

	redirectWithMessage(ctx, "/dashboard/", MsgCancelledPrefix+event.Name)
}

func (c *ParticipationController) handleJoinError(ctx *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrAlreadyJoined):
		redirectWithMessage(ctx, "/events/", MsgAlreadyJoined)
	case apperrors.Is(err, apperrors.ErrEventFull):
		redirectWithMessage(ctx, "/events/", MsgEventFull)
	default:
		middleware.HandlePageError(ctx, err)
	}
}

func (c *ParticipationController) handleCancelError(ctx *gin.Context, err error) {
	if apperrors.Is(err, apperrors.ErrNotJoined) {
		redirectWithMessage(ctx, "/dashboard/", MsgNotJoined)
		return
	}
	middleware.HandlePageError(ctx, err)
}

func (c *ParticipationController) renderJoinForm(ctx *gin.Context, event *models.Event, form dto.JoinForm, errs dto.FormErrors) {
	if errs == nil {
		errs = dto.FormErrors{}
	}
	middleware.RenderPage(ctx, http.StatusOK, "join_event.html", gin.H{
		"Title":  "Join " + event.Name,
		"Event":  event,
		"Form":   form,
		"Errors": errs,
	})
}
