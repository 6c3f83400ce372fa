package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/sportsmeet/internal/app/controllers"
)

func TestContact(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/contact/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="message"`)

	w = app.post("/contact/", url.Values{
		"name":    {"Alex"},
		"email":   {"alex@example.com"},
		"message": {"Do you run events in Bristol?"},
	}, nil)

	assertRedirect(t, w, "/contact/", controllers.MsgContactSent)
	contacts := app.store.Contacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, "Alex", contacts[0].Name)
	assert.Equal(t, "Do you run events in Bristol?", contacts[0].Message)
}

func TestContact_MissingFields(t *testing.T) {
	app := newTestApp(t)

	w := app.post("/contact/", url.Values{"name": {"Alex"}, "email": {"alex@example.com"}}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "This field is required.")
	assert.Empty(t, app.store.Contacts())
}
