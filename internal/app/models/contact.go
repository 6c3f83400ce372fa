package models

import "time"

// ContactMessage is a message left through the contact form
type ContactMessage struct {
	ID      int64     `json:"id" db:"id"`
	Name    string    `json:"name" db:"name"`
	Email   string    `json:"email" db:"email"`
	Message string    `json:"message" db:"message"`
	SentAt  time.Time `json:"sentAt" db:"sent_at"`
}
