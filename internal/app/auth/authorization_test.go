package auth

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/sportsmeet/internal/app/models"
	"github.com/yigit/sportsmeet/internal/app/repositories/repotest"
	"github.com/yigit/sportsmeet/internal/pkg/apperrors"
)

func TestValidateEventOwnership(t *testing.T) {
	store := repotest.NewStore()
	owner := store.AddUser("owner", "owner@example.com", "")
	other := store.AddUser("other", "other@example.com", "")
	event := store.AddEvent(models.Event{Name: "Match", TotalPlayers: 4, OrganizerID: &owner.ID})

	authz := NewAuthorizationService(store.Repositories().EventRepository, zerolog.Nop())
	ctx := context.Background()

	got, err := authz.ValidateEventOwnership(ctx, event.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, got.ID)

	_, err = authz.ValidateEventOwnership(ctx, event.ID, other.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = authz.ValidateEventOwnership(ctx, event.ID+100, owner.ID)
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}

func TestValidateEventOwnership_OrphanedEvent(t *testing.T) {
	store := repotest.NewStore()
	user := store.AddUser("someone", "someone@example.com", "")
	event := store.AddEvent(models.Event{Name: "No organizer", TotalPlayers: 2})

	authz := NewAuthorizationService(store.Repositories().EventRepository, zerolog.Nop())
	_, err := authz.ValidateEventOwnership(context.Background(), event.ID, user.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
