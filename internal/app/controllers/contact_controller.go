package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/sportsmeet/internal/app/models/dto"
	"github.com/yigit/sportsmeet/internal/app/services"
	"github.com/yigit/sportsmeet/internal/middleware"
)

// ContactController handles the contact form
type ContactController struct {
	contactService services.ContactService
	logger         zerolog.Logger
}

// NewContactController creates a new ContactController
func NewContactController(contactService services.ContactService, logger zerolog.Logger) *ContactController {
	return &ContactController{
		contactService: contactService,
		logger:         logger,
	}
}

// ContactForm renders the empty contact form
func (c *ContactController) ContactForm(ctx *gin.Context) {
	c.render(ctx, dto.ContactForm{}, nil)
}

// Submit stores the message and notifies the site contact
func (c *ContactController) Submit(ctx *gin.Context) {
	var form dto.ContactForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		c.render(ctx, form, dto.NewFormErrors(err, &form))
		return
	}

	if _, err := c.contactService.Submit(ctx, &form); err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}

	redirectWithMessage(ctx, "/contact/", MsgContactSent)
}

func (c *ContactController) render(ctx *gin.Context, form dto.ContactForm, errs dto.FormErrors) {
	if errs == nil {
		errs = dto.FormErrors{}
	}
	middleware.RenderPage(ctx, http.StatusOK, "contact.html", gin.H{
		"Title":  "Contact",
		"Form":   form,
		"Errors": errs,
	})
}
