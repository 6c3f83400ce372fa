package email

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func TestSend_LogsWithoutHost(t *testing.T) {
	var buf bytes.Buffer
	mailer := NewMailer(SMTPConfig{FromEmail: "no-reply@example.com"}, zerolog.New(&buf))

	err := mailer.Send(context.Background(), Message{
		To:      "admin@example.com",
		Subject: "New contact message from Ann",
		Body:    "hello",
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "email not sent")
	assert.Contains(t, buf.String(), "admin@example.com")
}

func TestBuildMessage(t *testing.T) {
	s := &SMTPMailer{config: SMTPConfig{FromName: "SportsMeet", FromEmail: "no-reply@example.com"}}

	m, err := s.buildMessage(Message{
		To:      "admin@example.com",
		ReplyTo: "ann@example.com",
		Subject: "New contact message from Ann",
		Body:    "hello",
	})
	require.NoError(t, err)

	rcpts, err := m.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"admin@example.com"}, rcpts)
	assert.Equal(t, []string{"New contact message from Ann"}, m.GetGenHeader(mail.HeaderSubject))
}

func TestBuildMessage_InvalidAddresses(t *testing.T) {
	s := &SMTPMailer{config: SMTPConfig{FromEmail: "no-reply@example.com"}}

	_, err := s.buildMessage(Message{Subject: "x"})
	assert.Error(t, err)

	_, err = s.buildMessage(Message{To: "not an address", Subject: "x"})
	assert.Error(t, err)
}

func TestClientOptions(t *testing.T) {
	s := &SMTPMailer{config: SMTPConfig{Host: "smtp.example.com", Port: 2525, Username: "u", Password: "p", UseTLS: true}}
	assert.Len(t, s.clientOptions(), 5)

	s.config.Username = ""
	s.config.UseTLS = false
	assert.Len(t, s.clientOptions(), 2)
}
