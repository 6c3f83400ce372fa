package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/sportsmeet/internal/app/auth"
	"github.com/yigit/sportsmeet/internal/app/models"
	"github.com/yigit/sportsmeet/internal/app/models/dto"
	"github.com/yigit/sportsmeet/internal/app/repositories"
	"github.com/yigit/sportsmeet/internal/pkg/apperrors"
)

// FeaturedEventLimit is how many upcoming events the home page shows
const FeaturedEventLimit = 3

// EventService defines the interface for event operations
type EventService interface {
	// ListEvents purges past events, then lists the rest, optionally filtered by q
	ListEvents(ctx context.Context, q string) ([]dto.EventCard, error)
	// FeaturedEvents returns the next few upcoming events without purging
	FeaturedEvents(ctx context.Context) ([]*models.Event, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	CreateEvent(ctx context.Context, organizerID int64, form *dto.EventForm) (*models.Event, error)
	// GetEventForEdit returns the event when userID organizes it
	GetEventForEdit(ctx context.Context, eventID, userID int64) (*models.Event, error)
	UpdateEvent(ctx context.Context, eventID, userID int64, form *dto.EventForm) (*models.Event, error)
	DeleteEvent(ctx context.Context, eventID, userID int64) error
	EventsByOrganizer(ctx context.Context, userID int64) ([]*models.Event, error)
	// PurgePastEvents deletes every event dated strictly before today
	PurgePastEvents(ctx context.Context) (int64, error)
}

type eventServiceImpl struct {
	eventRepo       repositories.IEventRepository
	participantRepo repositories.IParticipantRepository
	authzService    *auth.AuthorizationService
	clock           Clock
	logger          zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(
	eventRepo repositories.IEventRepository,
	participantRepo repositories.IParticipantRepository,
	authzService *auth.AuthorizationService,
	clock Clock,
	logger zerolog.Logger,
) EventService {
	return &eventServiceImpl{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		authzService:    authzService,
		clock:           clock,
		logger:          logger,
	}
}

func (s *eventServiceImpl) ListEvents(ctx context.Context, q string) ([]dto.EventCard, error) {
	if _, err := s.PurgePastEvents(ctx); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.List(ctx, repositories.EventFilter{Query: strings.TrimSpace(q)})
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}

	ids := make([]int64, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	counts, err := s.participantRepo.CountByEvents(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error counting participants: %w", err)
	}

	cards := make([]dto.EventCard, 0, len(events))
	for _, e := range events {
		cards = append(cards, dto.EventCard{Event: e, ParticipantCount: counts[e.ID]})
	}
	return cards, nil
}

func (s *eventServiceImpl) FeaturedEvents(ctx context.Context) ([]*models.Event, error) {
	today := s.clock.Today()
	events, err := s.eventRepo.List(ctx, repositories.EventFilter{From: &today, Limit: FeaturedEventLimit})
	if err != nil {
		return nil, fmt.Errorf("error listing featured events: %w", err)
	}
	return events, nil
}

func (s *eventServiceImpl) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

func (s *eventServiceImpl) CreateEvent(ctx context.Context, organizerID int64, form *dto.EventForm) (*models.Event, error) {
	event := &models.Event{OrganizerID: &organizerID}
	if err := form.ApplyTo(event); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}

	s.logger.Info().Int64("eventID", event.ID).Int64("organizerID", organizerID).Msg("Event created")
	return event, nil
}

func (s *eventServiceImpl) GetEventForEdit(ctx context.Context, eventID, userID int64) (*models.Event, error) {
	return s.authzService.ValidateEventOwnership(ctx, eventID, userID)
}

func (s *eventServiceImpl) UpdateEvent(ctx context.Context, eventID, userID int64, form *dto.EventForm) (*models.Event, error) {
	event, err := s.authzService.ValidateEventOwnership(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	if err := form.ApplyTo(event); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("error updating event: %w", err)
	}

	s.logger.Info().Int64("eventID", event.ID).Msg("Event updated")
	return event, nil
}

func (s *eventServiceImpl) DeleteEvent(ctx context.Context, eventID, userID int64) error {
	if _, err := s.authzService.ValidateEventOwnership(ctx, eventID, userID); err != nil {
		return err
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}

	s.logger.Info().Int64("eventID", eventID).Int64("userID", userID).Msg("Event deleted")
	return nil
}

func (s *eventServiceImpl) EventsByOrganizer(ctx context.Context, userID int64) ([]*models.Event, error) {
	events, err := s.eventRepo.List(ctx, repositories.EventFilter{OrganizerID: &userID})
	if err != nil {
		return nil, fmt.Errorf("error listing organizer events: %w", err)
	}
	return events, nil
}

func (s *eventServiceImpl) PurgePastEvents(ctx context.Context) (int64, error) {
	today := s.clock.Today()
	purged, err := s.eventRepo.DeleteBefore(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("error purging past events: %w", err)
	}
	if purged > 0 {
		s.logger.Info().Int64("purged", purged).Time("before", today).Msg("Purged past events")
	}
	return purged, nil
}
