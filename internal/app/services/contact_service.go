package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/sportsmeet/internal/app/models"
	"github.com/yigit/sportsmeet/internal/app/models/dto"
	"github.com/yigit/sportsmeet/internal/app/repositories"
	"github.com/yigit/sportsmeet/internal/pkg/email"
)

// ContactService handles contact form submissions
type ContactService interface {
	// Submit stores the message, then emails the site contact. Mail failures are only logged.
	Submit(ctx context.Context, form *dto.ContactForm) (*models.ContactMessage, error)
}

type contactServiceImpl struct {
	contactRepo repositories.IContactRepository
	mailer      email.Mailer
	recipient   string
	logger      zerolog.Logger
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repositories.IContactRepository, mailer email.Mailer, recipient string, logger zerolog.Logger) ContactService {
	return &contactServiceImpl{
		contactRepo: contactRepo,
		mailer:      mailer,
		recipient:   recipient,
		logger:      logger,
	}
}

func (s *contactServiceImpl) Submit(ctx context.Context, form *dto.ContactForm) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	}
	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("error saving contact message: %w", err)
	}

	if s.recipient == "" {
		s.logger.Warn().Int64("contactID", msg.ID).Msg("No contact recipient configured - notification skipped")
		return msg, nil
	}

	notification := email.Message{
		To:      s.recipient,
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("New contact message from %s", msg.Name),
		Body:    fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s\n", msg.Name, msg.Email, msg.Message),
	}
	if err := s.mailer.Send(ctx, notification); err != nil {
		s.logger.Error().Err(err).Int64("contactID", msg.ID).Msg("Failed to send contact notification")
	}

	return msg, nil
}
