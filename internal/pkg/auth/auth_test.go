package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService() *SessionService {
	return NewSessionService(SessionConfig{
		SecretKey:  "test-secret",
		Expiration: time.Hour,
		Issuer:     "sportsmeet.test",
	})
}

func TestSessionService_IssueAndValidate(t *testing.T) {
	s := newTestSessionService()

	token, err := s.Issue(42, "alice")
	require.NoError(t, err)

	claims, err := s.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, 3600, s.MaxAge())
}

func TestSessionService_Expired(t *testing.T) {
	s := newTestSessionService()
	issuedAt := time.Now().Add(-2 * time.Hour)
	s.now = func() time.Time { return issuedAt }

	token, err := s.Issue(1, "bob")
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestSessionService_RejectsForeignTokens(t *testing.T) {
	s := newTestSessionService()
	other := NewSessionService(SessionConfig{SecretKey: "other", Expiration: time.Hour, Issuer: "sportsmeet.test"})

	token, err := other.Issue(1, "mallory")
	require.NoError(t, err)

	_, err = s.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.Validate("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionService_WrongIssuer(t *testing.T) {
	s := newTestSessionService()
	other := NewSessionService(SessionConfig{SecretKey: "test-secret", Expiration: time.Hour, Issuer: "elsewhere"})

	token, err := other.Issue(1, "eve")
	require.NoError(t, err)

	_, err = s.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.True(t, CheckPassword(hash, "correct horse"))
	assert.False(t, CheckPassword(hash, "wrong horse"))
	assert.False(t, CheckPassword("not-a-hash", "correct horse"))
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", MaxPasswordBytes+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = HashPassword(strings.Repeat("x", MaxPasswordBytes))
	assert.NoError(t, err)
}
