package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/sportsmeet/internal/app/models"
	"github.com/yigit/sportsmeet/internal/app/models/dto"
	"github.com/yigit/sportsmeet/internal/app/repositories"
	"github.com/yigit/sportsmeet/internal/pkg/apperrors"
)

// MsgEmailMismatch is shown when the join email differs from the account email
const MsgEmailMismatch = "Email must match your account email."

// ParticipationService defines the interface for joining and leaving events
type ParticipationService interface {
	// CheckJoinable returns the event when userID may still join it
	CheckJoinable(ctx context.Context, eventID, userID int64) (*models.Event, error)
	// Join adds userID to the event and stores the join info
	Join(ctx context.Context, eventID, userID int64, form *dto.JoinForm) (*models.Event, error)
	// JoinedEvent returns the event when userID participates in it
	JoinedEvent(ctx context.Context, eventID, userID int64) (*models.Event, error)
	// Cancel removes the participation but keeps the join info
	Cancel(ctx context.Context, eventID, userID int64) (*models.Event, error)
	// PrefillJoinForm returns a join form carrying the account email
	PrefillJoinForm(ctx context.Context, userID int64) (*dto.JoinForm, error)
}

// CapacityNotifier is told about participant count changes so live listings can refresh
type CapacityNotifier interface {
	CapacityChanged(event *models.Event, participantCount int)
}

type noopNotifier struct{}

func (noopNotifier) CapacityChanged(*models.Event, int) {}

type participationServiceImpl struct {
	eventRepo       repositories.IEventRepository
	participantRepo repositories.IParticipantRepository
	userRepo        repositories.IUserRepository
	notifier        CapacityNotifier
	logger          zerolog.Logger
}

// NewParticipationService creates a new ParticipationService
func NewParticipationService(
	eventRepo repositories.IEventRepository,
	participantRepo repositories.IParticipantRepository,
	userRepo repositories.IUserRepository,
	notifier CapacityNotifier,
	logger zerolog.Logger,
) ParticipationService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &participationServiceImpl{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

func (s *participationServiceImpl) CheckJoinable(ctx context.Context, eventID, userID int64) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	joined, err := s.participantRepo.IsParticipant(ctx, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("error checking participation: %w", err)
	}
	if joined {
		return event, apperrors.ErrAlreadyJoined
	}

	count, err := s.participantRepo.Count(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("error counting participants: %w", err)
	}
	if event.IsFull(count) {
		return event, apperrors.ErrEventFull
	}

	return event, nil
}

func (s *participationServiceImpl) Join(ctx context.Context, eventID, userID int64, form *dto.JoinForm) (*models.Event, error) {
	event, err := s.CheckJoinable(ctx, eventID, userID)
	if err != nil {
		return event, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return event, fmt.Errorf("error getting user: %w", err)
	}
	if !strings.EqualFold(strings.TrimSpace(form.Email), user.Email) {
		return event, apperrors.NewCustomError(apperrors.ErrEmailMismatch, MsgEmailMismatch).WithField("email")
	}

	info := &models.EventJoinInfo{
		EventID:      eventID,
		UserID:       userID,
		FullName:     form.FullName,
		MobileNumber: form.PhoneNumber,
		Email:        user.Email,
	}
	if err := s.participantRepo.Join(ctx, info); err != nil {
		if apperrors.Is(err, apperrors.ErrEventFull, apperrors.ErrAlreadyJoined, apperrors.ErrEventNotFound) {
			return event, err
		}
		return event, fmt.Errorf("error joining event: %w", err)
	}

	s.logger.Info().Int64("eventID", eventID).Int64("userID", userID).Msg("User joined event")
	s.publishCount(ctx, event)
	return event, nil
}

func (s *participationServiceImpl) JoinedEvent(ctx context.Context, eventID, userID int64) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	joined, err := s.participantRepo.IsParticipant(ctx, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("error checking participation: %w", err)
	}
	if !joined {
		return event, apperrors.ErrNotJoined
	}
	return event, nil
}

func (s *participationServiceImpl) Cancel(ctx context.Context, eventID, userID int64) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.participantRepo.Leave(ctx, eventID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotJoined) {
			return event, err
		}
		return event, fmt.Errorf("error cancelling participation: %w", err)
	}

	s.logger.Info().Int64("eventID", eventID).Int64("userID", userID).Msg("User cancelled participation")
	s.publishCount(ctx, event)
	return event, nil
}

// publishCount reports the event's current participant count. Failures only cost a live refresh.
func (s *participationServiceImpl) publishCount(ctx context.Context, event *models.Event) {
	count, err := s.participantRepo.Count(ctx, event.ID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("eventID", event.ID).Msg("Failed to count participants for live update")
		return
	}
	s.notifier.CapacityChanged(event, count)
}

func (s *participationServiceImpl) PrefillJoinForm(ctx context.Context, userID int64) (*dto.JoinForm, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return &dto.JoinForm{Email: user.Email}, nil
}
