package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService(t *testing.T) {
	f := newFixture()
	organizer := f.store.AddUser("org", "org@example.com", "")
	stayer := f.store.AddUser("stayer", "stayer@example.com", "")
	leaver := f.store.AddUser("leaver", "leaver@example.com", "")
	ctx := context.Background()

	mine := f.event(t, organizer, "My match", 2, 5)
	theirs := f.event(t, stayer, "Their match", 1, 5)

	for _, u := range []struct {
		id    int64
		email string
	}{{stayer.ID, stayer.Email}, {leaver.ID, leaver.Email}} {
		_, err := f.part.Join(ctx, mine.ID, u.id, joinForm(u.email))
		require.NoError(t, err)
	}
	_, err := f.part.Cancel(ctx, mine.ID, leaver.ID)
	require.NoError(t, err)
	_, err = f.part.Join(ctx, theirs.ID, organizer.ID, joinForm(organizer.Email))
	require.NoError(t, err)

	t.Run("dashboard", func(t *testing.T) {
		d, err := f.dash.Dashboard(ctx, organizer.ID)
		require.NoError(t, err)

		require.Len(t, d.Organized, 1)
		assert.Equal(t, mine.ID, d.Organized[0].Event.ID)
		assert.Equal(t, 1, d.Organized[0].ParticipantCount)
		require.Len(t, d.Organized[0].JoinInfos, 1)
		assert.Equal(t, stayer.ID, d.Organized[0].JoinInfos[0].UserID)

		require.Len(t, d.Joined, 1)
		assert.Equal(t, theirs.ID, d.Joined[0].ID)
	})

	t.Run("rosters keep cancelled entries", func(t *testing.T) {
		rosters, err := f.dash.Rosters(ctx, organizer.ID)
		require.NoError(t, err)
		require.Len(t, rosters, 1)
		require.Len(t, rosters[0].JoinInfos, 2)

		active := map[int64]bool{}
		for _, info := range rosters[0].JoinInfos {
			active[info.UserID] = info.Active
		}
		assert.True(t, active[stayer.ID])
		assert.False(t, active[leaver.ID])
	})

	t.Run("empty", func(t *testing.T) {
		nobody := f.store.AddUser("nobody", "nobody@example.com", "")
		d, err := f.dash.Dashboard(ctx, nobody.ID)
		require.NoError(t, err)
		assert.Empty(t, d.Organized)
		assert.Empty(t, d.Joined)
	})
}

func TestDashboardService_RejoinShowsOnlyCurrentJoinInfo(t *testing.T) {
	f := newFixture()
	organizer := f.store.AddUser("org", "org@example.com", "")
	player := f.store.AddUser("player", "player@example.com", "")
	ctx := context.Background()
	event := f.event(t, organizer, "Second Chance", 2, 10)

	first := joinForm(player.Email)
	first.FullName = "Old Name"
	_, err := f.part.Join(ctx, event.ID, player.ID, first)
	require.NoError(t, err)
	_, err = f.part.Cancel(ctx, event.ID, player.ID)
	require.NoError(t, err)
	second := joinForm(player.Email)
	second.FullName = "New Name"
	_, err = f.part.Join(ctx, event.ID, player.ID, second)
	require.NoError(t, err)

	d, err := f.dash.Dashboard(ctx, organizer.ID)
	require.NoError(t, err)
	require.Len(t, d.Organized, 1)
	assert.Equal(t, 1, d.Organized[0].ParticipantCount)
	require.Len(t, d.Organized[0].JoinInfos, 1)
	assert.Equal(t, "New Name", d.Organized[0].JoinInfos[0].FullName)

	rosters, err := f.dash.Rosters(ctx, organizer.ID)
	require.NoError(t, err)
	require.Len(t, rosters, 1)
	active := map[string]bool{}
	for _, info := range rosters[0].JoinInfos {
		active[info.FullName] = info.Active
	}
	assert.Equal(t, map[string]bool{"Old Name": false, "New Name": true}, active)
}
