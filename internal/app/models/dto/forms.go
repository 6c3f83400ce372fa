package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/yigit/sportsmeet/internal/app/models"
)

// EventForm is shared by the create and edit pages
type EventForm struct {
	SportType    string `form:"sport_type" binding:"required,max=50,sport"`
	Name         string `form:"event_name" binding:"required,max=100"`
	Date         string `form:"event_date" binding:"required,datetime=2006-01-02"`
	Time         string `form:"event_time" binding:"required,datetime=15:04"`
	Location     string `form:"event_location" binding:"required,max=100"`
	TotalPlayers int    `form:"total_players" binding:"required,min=1,max=2147483647"`
	Description  string `form:"event_description"`
}

// Normalize trims surrounding whitespace from free-text fields
func (f *EventForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Location = strings.TrimSpace(f.Location)
	f.Description = strings.TrimSpace(f.Description)
}

// ApplyTo copies the form values onto e
func (f *EventForm) ApplyTo(e *models.Event) error {
	date, err := time.Parse(models.DateLayout, f.Date)
	if err != nil {
		return fmt.Errorf("invalid event date: %w", err)
	}
	if _, err := time.Parse(models.TimeLayout, f.Time); err != nil {
		return fmt.Errorf("invalid event time: %w", err)
	}

	e.SportType = f.SportType
	e.Name = f.Name
	e.Date = date
	e.Time = f.Time
	e.Location = f.Location
	e.TotalPlayers = f.TotalPlayers
	e.Description = f.Description
	return nil
}

// NewEventForm pre-fills the form from an existing event
func NewEventForm(e *models.Event) EventForm {
	return EventForm{
		SportType:    e.SportType,
		Name:         e.Name,
		Date:         e.DateString(),
		Time:         e.Time,
		Location:     e.Location,
		TotalPlayers: e.TotalPlayers,
		Description:  e.Description,
	}
}

// RegisterForm carries the sign-up fields
type RegisterForm struct {
	Username         string `form:"username" binding:"required,max=150,username"`
	Email            string `form:"email" binding:"required,max=254,email"`
	Password1        string `form:"password1" binding:"required,min=8,passwordbytes,notnumeric"`
	Password2        string `form:"password2" binding:"required,eqfield=Password1"`
	SportsInterested string `form:"sports_interested" binding:"required,max=255,sport"`
	City             string `form:"city" binding:"required,max=100"`
}

// Normalize trims surrounding whitespace from identity fields
func (f *RegisterForm) Normalize() {
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)
	f.City = strings.TrimSpace(f.City)
}

// LoginForm carries the sign-in fields
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Next     string `form:"next"`
}

// JoinForm captures contact details when joining an event
type JoinForm struct {
	FullName    string `form:"name" binding:"required,max=100"`
	Email       string `form:"email" binding:"required,max=254,email"`
	PhoneNumber string `form:"phone_number" binding:"required,max=15,phone"`
}

// Normalize trims surrounding whitespace
func (f *JoinForm) Normalize() {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
	f.PhoneNumber = strings.TrimSpace(f.PhoneNumber)
}

// ContactForm carries a contact message
type ContactForm struct {
	Name    string `form:"name" binding:"required,max=100"`
	Email   string `form:"email" binding:"required,max=254,email"`
	Message string `form:"message" binding:"required"`
}

// Normalize trims surrounding whitespace
func (f *ContactForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)
}
