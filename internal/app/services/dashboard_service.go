package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/sportsmeet/internal/app/models/dto"
	"github.com/yigit/sportsmeet/internal/app/repositories"
)

// DashboardService assembles the organizer and participant views
type DashboardService interface {
	// Dashboard returns organized events with rosters plus the events userID joined
	Dashboard(ctx context.Context, userID int64) (*dto.Dashboard, error)
	// Rosters returns organized events with every join info, cancelled ones flagged inactive
	Rosters(ctx context.Context, userID int64) ([]dto.EventRoster, error)
}

type dashboardServiceImpl struct {
	eventRepo       repositories.IEventRepository
	participantRepo repositories.IParticipantRepository
	logger          zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	eventRepo repositories.IEventRepository,
	participantRepo repositories.IParticipantRepository,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardServiceImpl{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		logger:          logger,
	}
}

func (s *dashboardServiceImpl) Dashboard(ctx context.Context, userID int64) (*dto.Dashboard, error) {
	rosters, err := s.Rosters(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Only current participants belong on the dashboard roster
	for i := range rosters {
		active := rosters[i].JoinInfos[:0:0]
		for _, info := range rosters[i].JoinInfos {
			if info.Active {
				active = append(active, info)
			}
		}
		rosters[i].JoinInfos = active
	}

	joined, err := s.participantRepo.EventsJoinedBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing joined events: %w", err)
	}

	return &dto.Dashboard{Organized: rosters, Joined: joined}, nil
}

func (s *dashboardServiceImpl) Rosters(ctx context.Context, userID int64) ([]dto.EventRoster, error) {
	events, err := s.eventRepo.List(ctx, repositories.EventFilter{OrganizerID: &userID})
	if err != nil {
		return nil, fmt.Errorf("error listing organizer events: %w", err)
	}

	ids := make([]int64, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}

	counts, err := s.participantRepo.CountByEvents(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error counting participants: %w", err)
	}
	infos, err := s.participantRepo.JoinInfosByEvents(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error listing join infos: %w", err)
	}

	rosters := make([]dto.EventRoster, 0, len(events))
	for _, e := range events {
		rosters = append(rosters, dto.EventRoster{
			Event:            e,
			ParticipantCount: counts[e.ID],
			JoinInfos:        infos[e.ID],
		})
	}
	return rosters, nil
}
