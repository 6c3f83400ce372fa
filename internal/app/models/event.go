package models

import (
	"strings"
	"time"
)

// DateLayout and TimeLayout are the formats used by HTML date and time inputs
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Event is a capacity-limited sports event
type Event struct {
	ID           int64     `json:"id" db:"id"`
	SportType    string    `json:"sportType" db:"sport_type"`
	Name         string    `json:"eventName" db:"event_name"`
	Date         time.Time `json:"eventDate" db:"event_date"`
	Time         string    `json:"eventTime" db:"event_time"` // HH:MM
	Location     string    `json:"eventLocation" db:"event_location"`
	TotalPlayers int       `json:"totalPlayers" db:"total_players"`
	Description  string    `json:"eventDescription" db:"event_description"`
	OrganizerID  *int64    `json:"organizerId,omitempty" db:"organizer_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// IsFull reports whether participantCount has reached capacity
func (e *Event) IsFull(participantCount int) bool {
	return participantCount >= e.TotalPlayers
}

// IsOrganizedBy reports whether userID organizes the event
func (e *Event) IsOrganizedBy(userID int64) bool {
	return e.OrganizerID != nil && *e.OrganizerID == userID
}

// IsPast reports whether the event date is strictly before today
func (e *Event) IsPast(today time.Time) bool {
	return e.Date.Before(today)
}

// DateString formats the event date for display and form inputs
func (e *Event) DateString() string {
	return e.Date.Format(DateLayout)
}

// Matches reports whether name or location contains q, ignoring case
func (e *Event) Matches(q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(e.Name), q) || strings.Contains(strings.ToLower(e.Location), q)
}
