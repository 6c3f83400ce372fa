package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/sportsmeet/internal/app/models"
	"github.com/yigit/sportsmeet/internal/app/repositories"
	"github.com/yigit/sportsmeet/internal/pkg/auth"
)

// DemoPassword is the password of every seeded account
const DemoPassword = "playball2024"

type demoUser struct {
	username string
	email    string
	sport    string
	city     string
}

var demoUsers = []demoUser{
	{username: "organizer", email: "organizer@sportsmeet.app", sport: "Football", city: "Istanbul"},
	{username: "player", email: "player@sportsmeet.app", sport: "Basketball", city: "Istanbul"},
}

type demoEvent struct {
	sport       string
	name        string
	daysAhead   int
	time        string
	location    string
	players     int
	description string
}

var demoEvents = []demoEvent{
	{sport: "Football", name: "Sunday Five-a-side", daysAhead: 2, time: "10:00", location: "Maçka Park", players: 10, description: "Friendly game, bring a dark and a light shirt."},
	{sport: "Basketball", name: "Evening Pickup Hoops", daysAhead: 3, time: "19:30", location: "Kadıköy Courts", players: 8, description: "Half court, first to 21."},
	{sport: "Tennis", name: "Doubles Morning", daysAhead: 5, time: "08:00", location: "Enka Tennis Club", players: 4},
	{sport: "Running", name: "Bosphorus 10K", daysAhead: 7, time: "07:00", location: "Bebek", players: 25, description: "Easy pace, coffee afterwards."},
}

// CreateDemoData inserts demo accounts and upcoming events. It does nothing when the demo organizer
// already exists, so running it twice is safe.
func CreateDemoData(ctx context.Context, repos *repositories.Repositories, today time.Time, lgr zerolog.Logger) error {
	exists, err := repos.UserRepository.UsernameExists(ctx, demoUsers[0].username)
	if err != nil {
		return fmt.Errorf("error checking demo data: %w", err)
	}
	if exists {
		lgr.Info().Msg("Demo data already present, skipping")
		return nil
	}

	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return err
	}

	users := make([]*models.User, 0, len(demoUsers))
	for _, du := range demoUsers {
		user := &models.User{Username: du.username, Email: du.email, Password: hash}
		profile := &models.UserProfile{SportsInterested: du.sport, City: du.city}
		if err := repos.UserRepository.CreateWithProfile(ctx, user, profile); err != nil {
			return fmt.Errorf("error creating demo user %s: %w", du.username, err)
		}
		users = append(users, user)
	}
	organizer, player := users[0], users[1]

	var finalErr error
	for i, de := range demoEvents {
		event := &models.Event{
			SportType:    de.sport,
			Name:         de.name,
			Date:         today.AddDate(0, 0, de.daysAhead),
			Time:         de.time,
			Location:     de.location,
			TotalPlayers: de.players,
			Description:  de.description,
			OrganizerID:  &organizer.ID,
		}
		if err := repos.EventRepository.Create(ctx, event); err != nil {
			lgr.Error().Err(err).Str("event", de.name).Msg("Error creating demo event")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		if i%2 == 0 {
			info := &models.EventJoinInfo{
				EventID:      event.ID,
				UserID:       player.ID,
				FullName:     "Demo Player",
				MobileNumber: "+905551234567",
				Email:        player.Email,
			}
			if err := repos.ParticipantRepository.Join(ctx, info); err != nil {
				lgr.Error().Err(err).Str("event", de.name).Msg("Error joining demo event")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	lgr.Info().Int("users", len(users)).Int("events", len(demoEvents)).Msg("Demo data created")
	return finalErr
}
