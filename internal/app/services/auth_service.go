package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/sportsmeet/internal/app/models"
	"github.com/yigit/sportsmeet/internal/app/models/dto"
	"github.com/yigit/sportsmeet/internal/app/repositories"
	"github.com/yigit/sportsmeet/internal/pkg/apperrors"
	"github.com/yigit/sportsmeet/internal/pkg/auth"
)

// User-facing account messages
const (
	MsgEmailTaken         = "An account with this email already exists."
	MsgUsernameTaken      = "A user with that username already exists."
	MsgInvalidCredentials = "Please enter a correct username and password."
	MsgPasswordTooLong    = "This password is too long. It must contain at most 72 bytes."
)

// AuthService handles registration and sign-in
type AuthService interface {
	// Register creates the user and profile; duplicate email or username is a field error
	Register(ctx context.Context, form *dto.RegisterForm) (*models.User, error)
	// Login checks credentials and returns the user with a signed session token
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	// Authenticate resolves a session token to its claims
	Authenticate(token string) (*auth.Claims, error)
	// SessionMaxAge is the cookie lifetime in seconds
	SessionMaxAge() int
}

type authServiceImpl struct {
	userRepo repositories.IUserRepository
	sessions *auth.SessionService
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, sessions *auth.SessionService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		sessions: sessions,
		logger:   logger,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, form *dto.RegisterForm) (*models.User, error) {
	emailTaken, err := s.userRepo.EmailExists(ctx, form.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if emailTaken {
		return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, MsgEmailTaken).WithField("email")
	}

	usernameTaken, err := s.userRepo.UsernameExists(ctx, form.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if usernameTaken {
		return nil, apperrors.NewCustomError(apperrors.ErrUsernameAlreadyExists, MsgUsernameTaken).WithField("username")
	}

	hash, err := auth.HashPassword(form.Password1)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, apperrors.NewValidationError("password1", MsgPasswordTooLong)
		}
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: form.Username,
		Email:    form.Email,
		Password: hash,
	}
	profile := &models.UserProfile{
		SportsInterested: form.SportsInterested,
		City:             form.City,
	}

	if err := s.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		if errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
			return nil, apperrors.NewCustomError(apperrors.ErrUsernameAlreadyExists, MsgUsernameTaken).WithField("username")
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("User registered")
	return user, nil
}

func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	invalid := apperrors.NewCustomError(apperrors.ErrInvalidCredentials, MsgInvalidCredentials).WithField(dto.NonFieldKey)

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", invalid
		}
		return nil, "", fmt.Errorf("error getting user: %w", err)
	}

	if !user.IsActive || !auth.CheckPassword(user.Password, password) {
		s.logger.Warn().Str("username", username).Msg("Failed login attempt")
		return nil, "", invalid
	}

	token, err := s.sessions.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login")
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User logged in")
	return user, token, nil
}

func (s *authServiceImpl) Authenticate(token string) (*auth.Claims, error) {
	claims, err := s.sessions.Validate(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, apperrors.ErrSessionInvalid
	}
	return claims, nil
}

func (s *authServiceImpl) SessionMaxAge() int {
	return s.sessions.MaxAge()
}
