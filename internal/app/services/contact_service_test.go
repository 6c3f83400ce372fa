package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/sportsmeet/internal/app/models/dto"
	"github.com/yigit/sportsmeet/internal/app/repositories/repotest"
)

func contactForm() *dto.ContactForm {
	return &dto.ContactForm{Name: "Ann", Email: "ann@example.com", Message: "Can I bring a friend?"}
}

func TestContactService_Submit(t *testing.T) {
	store := repotest.NewStore()
	mailer := &recordingMailer{}
	svc := NewContactService(store.Repositories().ContactRepository, mailer, "admin@example.com", zerolog.Nop())

	msg, err := svc.Submit(context.Background(), contactForm())
	require.NoError(t, err)
	assert.NotZero(t, msg.ID)

	contacts := store.Contacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, "Can I bring a friend?", contacts[0].Message)

	require.Len(t, mailer.sent, 1)
	sent := mailer.sent[0]
	assert.Equal(t, "admin@example.com", sent.To)
	assert.Equal(t, "ann@example.com", sent.ReplyTo)
	assert.Equal(t, "New contact message from Ann", sent.Subject)
	assert.Contains(t, sent.Body, "Ann")
	assert.Contains(t, sent.Body, "ann@example.com")
	assert.Contains(t, sent.Body, "Can I bring a friend?")
}

func TestContactService_Submit_MailFailureIsNotFatal(t *testing.T) {
	store := repotest.NewStore()
	mailer := &recordingMailer{err: errBoom}
	svc := NewContactService(store.Repositories().ContactRepository, mailer, "admin@example.com", zerolog.Nop())

	_, err := svc.Submit(context.Background(), contactForm())
	require.NoError(t, err)
	assert.Len(t, store.Contacts(), 1)
}

func TestContactService_Submit_NoRecipient(t *testing.T) {
	store := repotest.NewStore()
	mailer := &recordingMailer{}
	svc := NewContactService(store.Repositories().ContactRepository, mailer, "", zerolog.Nop())

	_, err := svc.Submit(context.Background(), contactForm())
	require.NoError(t, err)
	assert.Len(t, store.Contacts(), 1)
	assert.Empty(t, mailer.sent)
}

func TestContactService_Submit_StoreFailure(t *testing.T) {
	store := repotest.NewStore()
	store.Err = errBoom
	mailer := &recordingMailer{}
	svc := NewContactService(store.Repositories().ContactRepository, mailer, "admin@example.com", zerolog.Nop())

	_, err := svc.Submit(context.Background(), contactForm())
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, mailer.sent)
}
