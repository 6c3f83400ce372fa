package models

import "time"

// EventParticipant is a capacity-counted membership of a user in an event
type EventParticipant struct {
	ID       int64     `json:"id" db:"id"`
	EventID  int64     `json:"eventId" db:"event_id"`
	UserID   int64     `json:"userId" db:"user_id"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`
}

// EventJoinInfo holds the contact details captured when a user joins. It outlives cancellation.
type EventJoinInfo struct {
	ID           int64     `json:"id" db:"id"`
	EventID      int64     `json:"eventId" db:"event_id"`
	UserID       int64     `json:"userId" db:"user_id"`
	FullName     string    `json:"fullName" db:"full_name"`
	MobileNumber string    `json:"mobileNumber" db:"mobile_number"`
	Email        string    `json:"email" db:"email"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// Active is false once the user has cancelled; not stored
	Active bool `json:"active" db:"-"`
}
