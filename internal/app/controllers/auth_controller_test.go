package controllers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/sportsmeet/internal/app/controllers"
	"github.com/yigit/sportsmeet/internal/app/services"
)

func registerValues(username, email string) url.Values {
	return url.Values{
		"username":          {username},
		"email":             {email},
		"password1":         {"kickoff-2030"},
		"password2":         {"kickoff-2030"},
		"sports_interested": {"Football"},
		"city":              {"Leeds"},
	}
}

func sessionCookie(w *http.Response) *http.Cookie {
	for _, c := range w.Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	return nil
}

func TestRegister(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/register/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="password2"`)

	w = app.post("/register/", registerValues("new.player", "new@example.com"), nil)

	assertRedirect(t, w, "/user_login/", controllers.MsgAccountCreated)
	user, err := app.store.Repositories().UserRepository.GetByUsername(t.Context(), "new.player")
	require.NoError(t, err)
	profile, ok := app.store.Profile(user.ID)
	require.True(t, ok)
	assert.Equal(t, "Leeds", profile.City)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	app.user(t, "taken")

	w := app.post("/register/", registerValues("fresh", "TAKEN@example.com"), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), services.MsgEmailTaken)
	_, err := app.store.Repositories().UserRepository.GetByUsername(t.Context(), "fresh")
	assert.Error(t, err)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	app := newTestApp(t)
	app.user(t, "taken")

	w := app.post("/register/", registerValues("taken", "other@example.com"), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), services.MsgUsernameTaken)
}

func TestRegister_InvalidForm(t *testing.T) {
	app := newTestApp(t)
	values := registerValues("bad name!", "not-an-email")
	values.Set("password1", "12345678")
	values.Set("password2", "87654321")
	values.Set("sports_interested", "Chess")

	w := app.post("/register/", values, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Enter a valid username.")
	assert.Contains(t, body, "Enter a valid email address.")
	assert.Contains(t, body, "This password is entirely numeric.")
	assert.Contains(t, body, "Select a valid choice.")
	assert.NotContains(t, body, "12345678")
}

func TestRegister_PasswordLongerThanBcryptLimit(t *testing.T) {
	app := newTestApp(t)
	values := registerValues("long.pass", "long@example.com")
	password := strings.Repeat("kickoff-", 10) + "2030" // 84 bytes
	values.Set("password1", password)
	values.Set("password2", password)

	w := app.post("/register/", values, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "This password is too long.")
	_, err := app.store.Repositories().UserRepository.GetByUsername(t.Context(), "long.pass")
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)
	app.user(t, "player")

	w := app.get("/user_login/?next=/dashboard/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="/dashboard/"`)

	w = app.post("/user_login/", url.Values{"username": {"player"}, "password": {testPassword}}, nil)

	assertRedirect(t, w, "/", controllers.MsgLoggedIn)
	cookie := sessionCookie(w.Result())
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	w = app.get("/dashboard/", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hi, player")
}

func TestLogin_FollowsSafeNext(t *testing.T) {
	app := newTestApp(t)
	app.user(t, "player")

	w := app.post("/user_login/", url.Values{
		"username": {"player"}, "password": {testPassword}, "next": {"/my_events/"},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/my_events/", w.Header().Get("Location"))

	w = app.post("/user_login/", url.Values{
		"username": {"player"}, "password": {testPassword}, "next": {"https://evil.example.com/"},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/?message="))
}

func TestLogin_WrongPassword(t *testing.T) {
	app := newTestApp(t)
	app.user(t, "player")

	w := app.post("/user_login/", url.Values{"username": {"player"}, "password": {"nope"}}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), services.MsgInvalidCredentials)
	assert.Nil(t, sessionCookie(w.Result()))
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	cookie := app.session(t, app.user(t, "player"))

	w := app.post("/logout/", url.Values{}, cookie)

	assertRedirect(t, w, "/", controllers.MsgLoggedOut)
	cleared := sessionCookie(w.Result())
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.MaxAge < 0)
}
