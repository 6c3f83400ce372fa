package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/sportsmeet/internal/app/models/dto"
	"github.com/yigit/sportsmeet/internal/app/services"
	"github.com/yigit/sportsmeet/internal/middleware"
	"github.com/yigit/sportsmeet/internal/pkg/apperrors"
	"github.com/yigit/sportsmeet/internal/pkg/helpers"
)

// AuthController handles registration and the session lifecycle
type AuthController struct {
	authService    services.AuthService
	authMiddleware *middleware.AuthMiddleware
	logger         zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, authMiddleware *middleware.AuthMiddleware, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService:    authService,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

// RegisterForm renders the sign-up page
func (c *AuthController) RegisterForm(ctx *gin.Context) {
	c.render(ctx, "register.html", "Register", dto.RegisterForm{}, nil)
}

// Register creates the account and its profile
func (c *AuthController) Register(ctx *gin.Context) {
	var form dto.RegisterForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		c.logger.Debug().Err(err).Msg("Invalid registration form")
		c.render(ctx, "register.html", "Register", clearPasswords(form), dto.NewFormErrors(err, &form))
		return
	}

	if _, err := c.authService.Register(ctx, &form); err != nil {
		if _, _, ok := apperrors.FieldOf(err); ok {
			c.render(ctx, "register.html", "Register", clearPasswords(form), dto.NewFormErrors(err, &form))
			return
		}
		middleware.HandlePageError(ctx, err)
		return
	}

	redirectWithMessage(ctx, middleware.LoginPath, MsgAccountCreated)
}

// LoginForm renders the sign-in page, keeping ?next= for after the login
func (c *AuthController) LoginForm(ctx *gin.Context) {
	c.render(ctx, "user_login.html", "Log in", dto.LoginForm{Next: ctx.Query("next")}, nil)
}

// Login checks the credentials and starts a session
func (c *AuthController) Login(ctx *gin.Context) {
	var form dto.LoginForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		form.Password = ""
		c.render(ctx, "user_login.html", "Log in", form, dto.NewFormErrors(err, &form))
		return
	}

	_, token, err := c.authService.Login(ctx, form.Username, form.Password)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidCredentials) {
			form.Password = ""
			c.render(ctx, "user_login.html", "Log in", form, dto.NewFormErrors(err, &form))
			return
		}
		middleware.HandlePageError(ctx, err)
		return
	}

	c.authMiddleware.SetSession(ctx, token)

	if form.Next != "" {
		ctx.Redirect(http.StatusFound, helpers.SafeRedirect(form.Next, helpers.WithMessage("/", MsgLoggedIn)))
		return
	}
	redirectWithMessage(ctx, "/", MsgLoggedIn)
}

// Logout ends the session
func (c *AuthController) Logout(ctx *gin.Context) {
	c.authMiddleware.ClearSession(ctx)
	redirectWithMessage(ctx, "/", MsgLoggedOut)
}

func (c *AuthController) render(ctx *gin.Context, page, title string, form interface{}, errs dto.FormErrors) {
	if errs == nil {
		errs = dto.FormErrors{}
	}
	middleware.RenderPage(ctx, http.StatusOK, page, gin.H{
		"Title":  title,
		"Form":   form,
		"Errors": errs,
	})
}

func clearPasswords(form dto.RegisterForm) dto.RegisterForm {
	form.Password1 = ""
	form.Password2 = ""
	return form
}
