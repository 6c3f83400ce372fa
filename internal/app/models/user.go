package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id"`
	Username    string     `json:"username" db:"username"`
	Email       string     `json:"email" db:"email"`
	Password    string     `json:"-" db:"password"` // bcrypt hash
	IsActive    bool       `json:"isActive" db:"is_active"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"` // date joined
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// UserProfile holds the extra registration fields, one per user
type UserProfile struct {
	ID               int64  `json:"id" db:"id"`
	UserID           int64  `json:"userId" db:"user_id"`
	SportsInterested string `json:"sportsInterested" db:"sports_interested"`
	City             string `json:"city" db:"city"`
}
