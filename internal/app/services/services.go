package services

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/sportsmeet/internal/app/auth"
	"github.com/yigit/sportsmeet/internal/app/repositories"
	pkgauth "github.com/yigit/sportsmeet/internal/pkg/auth"
	"github.com/yigit/sportsmeet/internal/pkg/email"
	"github.com/yigit/sportsmeet/internal/pkg/helpers"
)

// Services defined in this package:
// - AuthService: registration, login and session validation
// - EventService: listing with the stale-event purge, featured events and organizer CRUD
// - ParticipationService: joining and cancelling with the capacity check
// - DashboardService: organizer rosters and joined events
// - ContactService: stores contact messages and notifies by email

// Services groups every service the controllers need
type Services struct {
	Auth          AuthService
	Events        EventService
	Participation ParticipationService
	Dashboard     DashboardService
	Contact       ContactService
}

// Deps are the collaborators shared by the services
type Deps struct {
	Repos            *repositories.Repositories
	Sessions         *pkgauth.SessionService
	Mailer           email.Mailer
	ContactRecipient string
	// Notifier receives participant count changes; nil disables live updates
	Notifier CapacityNotifier
	Location *time.Location
	Logger   zerolog.Logger
}

// NewServices wires every service from deps
func NewServices(deps Deps) *Services {
	clock := newClock(deps.Location)
	authz := auth.NewAuthorizationService(deps.Repos.EventRepository, deps.Logger)

	return &Services{
		Auth:          NewAuthService(deps.Repos.UserRepository, deps.Sessions, deps.Logger),
		Events:        NewEventService(deps.Repos.EventRepository, deps.Repos.ParticipantRepository, authz, clock, deps.Logger),
		Participation: NewParticipationService(deps.Repos.EventRepository, deps.Repos.ParticipantRepository, deps.Repos.UserRepository, deps.Notifier, deps.Logger),
		Dashboard:     NewDashboardService(deps.Repos.EventRepository, deps.Repos.ParticipantRepository, deps.Logger),
		Contact:       NewContactService(deps.Repos.ContactRepository, deps.Mailer, deps.ContactRecipient, deps.Logger),
	}
}

// Clock tells services what day it is
type Clock interface {
	Today() time.Time
}

type locationClock struct {
	loc *time.Location
}

func newClock(loc *time.Location) Clock {
	return locationClock{loc: loc}
}

// Today returns the current date in the configured time zone
func (c locationClock) Today() time.Time {
	return helpers.Today(c.loc)
}
