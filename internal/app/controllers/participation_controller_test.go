package controllers_test

import (
	"html"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/sportsmeet/internal/app/controllers"
	"github.com/yigit/sportsmeet/internal/app/models"
	"github.com/yigit/sportsmeet/internal/app/services"
)

func joinPath(e *models.Event) string {
	return "/join_event/" + strconv.FormatInt(e.ID, 10) + "/"
}

func cancelPath(e *models.Event) string {
	return "/cancel_joined_event/" + strconv.FormatInt(e.ID, 10) + "/"
}

func joinValues(email string) url.Values {
	return url.Values{
		"name":         {"Sam Player"},
		"email":        {email},
		"phone_number": {"+44 7700 900123"},
	}
}

func TestJoinEvent(t *testing.T) {
	app := newTestApp(t)
	player := app.user(t, "player")
	event := app.event(nil, "Open Game", 2, 10)
	cookie := app.session(t, player)

	w := app.get(joinPath(event), cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="player@example.com"`)

	w = app.post(joinPath(event), joinValues("player@example.com"), cookie)

	assertRedirect(t, w, "/events/", controllers.MsgJoinedPrefix+"Open Game")
	assert.Equal(t, 1, app.store.ParticipantCount(event.ID))
	infos := app.store.JoinInfos(event.ID)
	require.Len(t, infos, 1)
	assert.Equal(t, "Sam Player", infos[0].FullName)
	assert.Equal(t, "+44 7700 900123", infos[0].MobileNumber)
}

func TestJoinEvent_FullEvent(t *testing.T) {
	app := newTestApp(t)
	first := app.user(t, "first")
	late := app.user(t, "late")
	event := app.event(nil, "One Spot", 2, 1)
	app.store.AddParticipant(event.ID, first.ID)
	cookie := app.session(t, late)

	assertRedirect(t, app.get(joinPath(event), cookie), "/events/", controllers.MsgEventFull)

	w := app.post(joinPath(event), joinValues("late@example.com"), cookie)

	assertRedirect(t, w, "/events/", controllers.MsgEventFull)
	assert.Equal(t, 1, app.store.ParticipantCount(event.ID))
	assert.Empty(t, app.store.JoinInfos(event.ID))
}

func TestJoinEvent_AlreadyJoined(t *testing.T) {
	app := newTestApp(t)
	player := app.user(t, "player")
	event := app.event(nil, "Twice", 2, 10)
	cookie := app.session(t, player)

	w := app.post(joinPath(event), joinValues("player@example.com"), cookie)
	require.Equal(t, http.StatusFound, w.Code)

	assertRedirect(t, app.get(joinPath(event), cookie), "/events/", controllers.MsgAlreadyJoined)
	w = app.post(joinPath(event), joinValues("player@example.com"), cookie)

	assertRedirect(t, w, "/events/", controllers.MsgAlreadyJoined)
	assert.Equal(t, 1, app.store.ParticipantCount(event.ID))
}

func TestJoinEvent_EmailMustMatchAccount(t *testing.T) {
	app := newTestApp(t)
	player := app.user(t, "player")
	event := app.event(nil, "Strict", 2, 10)

	w := app.post(joinPath(event), joinValues("someone.else@example.com"), app.session(t, player))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), services.MsgEmailMismatch)
	assert.Equal(t, 0, app.store.ParticipantCount(event.ID))
}

func TestJoinEvent_InvalidPhone(t *testing.T) {
	app := newTestApp(t)
	player := app.user(t, "player")
	event := app.event(nil, "Phones", 2, 10)
	values := joinValues("player@example.com")
	values.Set("phone_number", "call me")

	w := app.post(joinPath(event), values, app.session(t, player))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Enter a valid phone number.")
	assert.Equal(t, 0, app.store.ParticipantCount(event.ID))
}

func TestJoinEvent_MissingEvent(t *testing.T) {
	app := newTestApp(t)
	cookie := app.session(t, app.user(t, "player"))

	w := app.get("/join_event/4242/", cookie)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelJoinedEvent(t *testing.T) {
	app := newTestApp(t)
	player := app.user(t, "player")
	event := app.event(nil, "Leaving", 2, 10)
	cookie := app.session(t, player)
	require.Equal(t, http.StatusFound, app.post(joinPath(event), joinValues("player@example.com"), cookie).Code)

	w := app.get(cancelPath(event), cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Leaving")
	assert.Equal(t, 1, app.store.ParticipantCount(event.ID))

	w = app.post(cancelPath(event), url.Values{}, cookie)

	assertRedirect(t, w, "/dashboard/", controllers.MsgCancelledPrefix+"Leaving")
	assert.Equal(t, 0, app.store.ParticipantCount(event.ID))
	assert.Len(t, app.store.JoinInfos(event.ID), 1)
}

func TestCancelJoinedEvent_NotJoined(t *testing.T) {
	app := newTestApp(t)
	event := app.event(nil, "Never Joined", 2, 10)
	cookie := app.session(t, app.user(t, "player"))

	assertRedirect(t, app.get(cancelPath(event), cookie), "/dashboard/", controllers.MsgNotJoined)
	assertRedirect(t, app.post(cancelPath(event), url.Values{}, cookie), "/dashboard/", controllers.MsgNotJoined)
}

func TestRejoinAfterCancel_KeepsEarlierJoinInfo(t *testing.T) {
	app := newTestApp(t)
	player := app.user(t, "player")
	event := app.event(nil, "Back Again", 2, 10)
	cookie := app.session(t, player)

	require.Equal(t, http.StatusFound, app.post(joinPath(event), joinValues("player@example.com"), cookie).Code)
	require.Equal(t, http.StatusFound, app.post(cancelPath(event), url.Values{}, cookie).Code)
	w := app.post(joinPath(event), joinValues("player@example.com"), cookie)

	assertRedirect(t, w, "/events/", controllers.MsgJoinedPrefix+"Back Again")
	assert.Equal(t, 1, app.store.ParticipantCount(event.ID))
	assert.Len(t, app.store.JoinInfos(event.ID), 2)
}

func TestDashboards(t *testing.T) {
	app := newTestApp(t)
	organizer := app.user(t, "organizer")
	player := app.user(t, "player")
	leaver := app.user(t, "leaver")
	event := app.event(organizer, "Roster Game", 2, 10)

	playerCookie := app.session(t, player)
	leaverCookie := app.session(t, leaver)
	require.Equal(t, http.StatusFound, app.post(joinPath(event), url.Values{
		"name": {"Pat Stays"}, "email": {"player@example.com"}, "phone_number": {"07700900123"},
	}, playerCookie).Code)
	require.Equal(t, http.StatusFound, app.post(joinPath(event), url.Values{
		"name": {"Lee Leaves"}, "email": {"leaver@example.com"}, "phone_number": {"07700900456"},
	}, leaverCookie).Code)
	require.Equal(t, http.StatusFound, app.post(cancelPath(event), url.Values{}, leaverCookie).Code)

	organizerCookie := app.session(t, organizer)

	w := app.get("/dashboard/", organizerCookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pat Stays")
	assert.NotContains(t, w.Body.String(), "Lee Leaves")

	w = app.get("/organizer_dashboard/", organizerCookie)
	require.Equal(t, http.StatusOK, w.Code)
	body := html.UnescapeString(w.Body.String())
	assert.Contains(t, body, "Pat Stays")
	assert.Contains(t, body, "Lee Leaves")
	assert.Contains(t, body, `class="cancelled"`)

	w = app.get("/dashboard/", playerCookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), cancelPath(event))
}

func TestDashboards_RejoinReplacesRosterEntry(t *testing.T) {
	app := newTestApp(t)
	organizer := app.user(t, "organizer")
	player := app.user(t, "player")
	event := app.event(organizer, "Comeback Game", 2, 10)
	cookie := app.session(t, player)

	values := joinValues("player@example.com")
	values.Set("name", "Old Name")
	require.Equal(t, http.StatusFound, app.post(joinPath(event), values, cookie).Code)
	require.Equal(t, http.StatusFound, app.post(cancelPath(event), url.Values{}, cookie).Code)
	values.Set("name", "New Name")
	require.Equal(t, http.StatusFound, app.post(joinPath(event), values, cookie).Code)

	organizerCookie := app.session(t, organizer)

	w := app.get("/dashboard/", organizerCookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "New Name")
	assert.NotContains(t, w.Body.String(), "Old Name")

	w = app.get("/organizer_dashboard/", organizerCookie)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "New Name")
	assert.Contains(t, body, "Old Name")
	assert.Equal(t, 1, strings.Count(body, `class="cancelled"`))
}
