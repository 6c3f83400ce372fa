package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/sportsmeet/internal/app/services"
)

// Context keys set by SessionAuth
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
)

// LoginPath is where anonymous users are sent
const LoginPath = "/user_login/"

// SessionConfig describes the session cookie
type SessionConfig struct {
	CookieName string
	Secure     bool
}

// AuthMiddleware loads the signed-in user from the session cookie
type AuthMiddleware struct {
	authService services.AuthService
	config      SessionConfig
	logger      zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService services.AuthService, config SessionConfig, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		config:      config,
		logger:      logger,
	}
}

// SessionAuth resolves the session cookie, if any. Invalid cookies are cleared; the request continues anonymously.
func (m *AuthMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.config.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := m.authService.Authenticate(token)
		if err != nil {
			m.logger.Debug().Err(err).Msg("Discarding invalid session cookie")
			m.ClearSession(c)
			c.Next()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

// LoginRequired redirects anonymous users to the login page, remembering where they were going
func (m *AuthMiddleware) LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); ok {
			c.Next()
			return
		}

		target := LoginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusFound, target)
		c.Abort()
	}
}

// SetSession stores a signed session token in the cookie
func (m *AuthMiddleware) SetSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.config.CookieName, token, m.authService.SessionMaxAge(), "/", "", m.config.Secure, true)
}

// ClearSession removes the session cookie
func (m *AuthMiddleware) ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.config.CookieName, "", -1, "/", "", m.config.Secure, true)
}

// CurrentUserID returns the signed-in user's ID
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id > 0
}

// CurrentUsername returns the signed-in user's name, or "" when anonymous
func CurrentUsername(c *gin.Context) string {
	return c.GetString(ContextUsername)
}
