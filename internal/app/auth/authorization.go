package auth

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/sportsmeet/internal/app/models"
	"github.com/yigit/sportsmeet/internal/app/repositories"
	"github.com/yigit/sportsmeet/internal/pkg/apperrors"
)

// AuthorizationService handles authorization operations
type AuthorizationService struct {
	eventRepo repositories.IEventRepository
	logger    zerolog.Logger
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(eventRepo repositories.IEventRepository, logger zerolog.Logger) *AuthorizationService {
	return &AuthorizationService{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// ValidateEventOwnership returns the event when userID organizes it.
// It fails with ErrEventNotFound or ErrPermissionDenied.
func (s *AuthorizationService) ValidateEventOwnership(ctx context.Context, eventID, userID int64) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrEventNotFound) {
			s.logger.Error().Err(err).Int64("eventID", eventID).Msg("Error getting event in ValidateEventOwnership")
		}
		return nil, err
	}

	if !event.IsOrganizedBy(userID) {
		s.logger.Warn().Int64("eventID", eventID).Int64("userID", userID).Msg("User does not organize event")
		return nil, apperrors.NewForbiddenError("you don't organize this event")
	}

	return event, nil
}
