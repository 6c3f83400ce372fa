package dto

import "github.com/yigit/sportsmeet/internal/app/models"

// EventCard is an event together with its current participant count
type EventCard struct {
	Event            *models.Event
	ParticipantCount int
}

// IsFull reports whether the card's event has no open places
func (c EventCard) IsFull() bool {
	return c.Event.IsFull(c.ParticipantCount)
}

// SpotsLeft returns the number of open places
func (c EventCard) SpotsLeft() int {
	if left := c.Event.TotalPlayers - c.ParticipantCount; left > 0 {
		return left
	}
	return 0
}

// EventRoster is an organized event with the join details of its participants
type EventRoster struct {
	Event            *models.Event
	ParticipantCount int
	JoinInfos        []*models.EventJoinInfo
}

// Dashboard is everything shown on the user's dashboard
type Dashboard struct {
	Organized []EventRoster
	Joined    []*models.Event
}
