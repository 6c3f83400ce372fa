package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/sportsmeet/internal/app/models"
	"github.com/yigit/sportsmeet/internal/app/models/dto"
	"github.com/yigit/sportsmeet/internal/app/repositories/repotest"
	"github.com/yigit/sportsmeet/internal/pkg/apperrors"
)

func joinForm(email string) *dto.JoinForm {
	return &dto.JoinForm{FullName: "Pat Player", Email: email, PhoneNumber: "07700900123"}
}

func TestParticipationService_Join(t *testing.T) {
	f := newFixture()
	organizer := f.store.AddUser("org", "org@example.com", "")
	player := f.store.AddUser("player", "player@example.com", "")
	event := f.event(t, organizer, "Five a side", 1, 2)

	before := f.store.ParticipantCount(event.ID)
	joined, err := f.part.Join(context.Background(), event.ID, player.ID, joinForm("Player@Example.com"))
	require.NoError(t, err)
	assert.Equal(t, event.ID, joined.ID)
	assert.Equal(t, before+1, f.store.ParticipantCount(event.ID))

	infos := f.store.JoinInfos(event.ID)
	require.Len(t, infos, 1)
	assert.Equal(t, "Pat Player", infos[0].FullName)
	assert.Equal(t, "player@example.com", infos[0].Email)
	assert.Equal(t, "07700900123", infos[0].MobileNumber)
}

func TestParticipationService_Join_AtCapacity(t *testing.T) {
	f := newFixture()
	organizer := f.store.AddUser("org", "org@example.com", "")
	first := f.store.AddUser("first", "first@example.com", "")
	late := f.store.AddUser("late", "late@example.com", "")
	event := f.event(t, organizer, "Singles", 1, 1)
	f.store.AddParticipant(event.ID, first.ID)

	_, err := f.part.Join(context.Background(), event.ID, late.ID, joinForm("late@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrEventFull)
	assert.Equal(t, 1, f.store.ParticipantCount(event.ID))
	assert.Empty(t, f.store.JoinInfos(event.ID))

	_, err = f.part.CheckJoinable(context.Background(), event.ID, late.ID)
	assert.ErrorIs(t, err, apperrors.ErrEventFull)
}

func TestParticipationService_Join_Twice(t *testing.T) {
	f := newFixture()
	organizer := f.store.AddUser("org", "org@example.com", "")
	player := f.store.AddUser("player", "player@example.com", "")
	event := f.event(t, organizer, "Run club", 1, 10)
	ctx := context.Background()

	_, err := f.part.Join(ctx, event.ID, player.ID, joinForm("player@example.com"))
	require.NoError(t, err)

	_, err = f.part.Join(ctx, event.ID, player.ID, joinForm("player@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrAlreadyJoined)
	assert.Equal(t, 1, f.store.ParticipantCount(event.ID))

	_, err = f.part.CheckJoinable(ctx, event.ID, player.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyJoined)
}

func TestParticipationService_Join_EmailMismatch(t *testing.T) {
	f := newFixture()
	organizer := f.store.AddUser("org", "org@example.com", "")
	player := f.store.AddUser("player", "player@example.com", "")
	event := f.event(t, organizer, "Badminton", 1, 4)

	_, err := f.part.Join(context.Background(), event.ID, player.ID, joinForm("someone-else@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrEmailMismatch)
	field, _, ok := apperrors.FieldOf(err)
	require.True(t, ok)
	assert.Equal(t, "email", field)
	assert.Zero(t, f.store.ParticipantCount(event.ID))
}

func TestParticipationService_Join_MissingEvent(t *testing.T) {
	f := newFixture()
	player := f.store.AddUser("player", "player@example.com", "")

	_, err := f.part.Join(context.Background(), 404, player.ID, joinForm("player@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}

func TestParticipationService_Cancel(t *testing.T) {
	f := newFixture()
	organizer := f.store.AddUser("org", "org@example.com", "")
	player := f.store.AddUser("player", "player@example.com", "")
	other := f.store.AddUser("other", "other@example.com", "")
	event := f.event(t, organizer, "Volleyball", 1, 6)
	ctx := context.Background()

	_, err := f.part.Join(ctx, event.ID, player.ID, joinForm("player@example.com"))
	require.NoError(t, err)
	_, err = f.part.Join(ctx, event.ID, other.ID, joinForm("other@example.com"))
	require.NoError(t, err)

	_, err = f.part.JoinedEvent(ctx, event.ID, player.ID)
	require.NoError(t, err)

	_, err = f.part.Cancel(ctx, event.ID, player.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.store.ParticipantCount(event.ID), "exactly one participant removed")
	assert.Len(t, f.store.JoinInfos(event.ID), 2, "join info is retained")

	_, err = f.part.Cancel(ctx, event.ID, player.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotJoined)
	_, err = f.part.JoinedEvent(ctx, event.ID, player.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotJoined)

	_, err = f.part.Cancel(ctx, event.ID+50, player.ID)
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}

func TestParticipationService_RejoinAfterCancel(t *testing.T) {
	f := newFixture()
	organizer := f.store.AddUser("org", "org@example.com", "")
	player := f.store.AddUser("player", "player@example.com", "")
	event := f.event(t, organizer, "Cricket nets", 1, 6)
	ctx := context.Background()

	_, err := f.part.Join(ctx, event.ID, player.ID, joinForm("player@example.com"))
	require.NoError(t, err)
	_, err = f.part.Cancel(ctx, event.ID, player.ID)
	require.NoError(t, err)
	_, err = f.part.Join(ctx, event.ID, player.ID, joinForm("player@example.com"))
	require.NoError(t, err)

	assert.Equal(t, 1, f.store.ParticipantCount(event.ID))
	assert.Len(t, f.store.JoinInfos(event.ID), 2)
}

func TestParticipationService_PrefillJoinForm(t *testing.T) {
	f := newFixture()
	player := f.store.AddUser("player", "player@example.com", "")

	form, err := f.part.PrefillJoinForm(context.Background(), player.ID)
	require.NoError(t, err)
	assert.Equal(t, "player@example.com", form.Email)
}

func TestParticipationService_NotifiesCapacityChanges(t *testing.T) {
	f := newFixture()
	organizer := f.store.AddUser("org", "org@example.com", "")
	player := f.store.AddUser("player", "player@example.com", "")
	event := f.event(t, organizer, "Live Counts", 1, 4)
	ctx := context.Background()

	_, err := f.part.Join(ctx, event.ID, player.ID, joinForm("player@example.com"))
	require.NoError(t, err)
	_, err = f.part.Join(ctx, event.ID, player.ID, joinForm("player@example.com"))
	require.ErrorIs(t, err, apperrors.ErrAlreadyJoined)
	_, err = f.part.Cancel(ctx, event.ID, player.ID)
	require.NoError(t, err)

	assert.Equal(t, []capacityChange{
		{eventID: event.ID, count: 1},
		{eventID: event.ID, count: 0},
	}, f.notifier.changes)
}

func TestParticipationService_NilNotifier(t *testing.T) {
	store := repotest.NewStore()
	repos := store.Repositories()
	svc := NewParticipationService(repos.EventRepository, repos.ParticipantRepository, repos.UserRepository, nil, zerolog.Nop())
	player := store.AddUser("player", "player@example.com", "")
	event := store.AddEvent(models.Event{Name: "Quiet", Date: testToday, Time: "10:00", TotalPlayers: 2})

	_, err := svc.Join(context.Background(), event.ID, player.ID, joinForm("player@example.com"))

	require.NoError(t, err)
	assert.Equal(t, 1, store.ParticipantCount(event.ID))
}
