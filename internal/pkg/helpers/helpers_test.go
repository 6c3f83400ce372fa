package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	in := time.Date(2025, 3, 9, 23, 30, 0, 0, loc)

	got := DateOnly(in)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), got)
}

func TestToday_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*3600)
	want := DateOnly(time.Now().In(loc))
	assert.Equal(t, want, Today(loc))
	assert.Equal(t, DateOnly(time.Now().UTC()), Today(nil))
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("17")
	assert.True(t, ok)
	assert.Equal(t, int64(17), id)

	for _, raw := range []string{"", "0", "-3", "abc", "1.5"} {
		_, ok := ParseID(raw)
		assert.False(t, ok, raw)
	}
}

func TestWithMessage(t *testing.T) {
	assert.Equal(t, "/events/", WithMessage("/events/", ""))
	assert.Equal(t, "/events/?message=Event+is+full.+Cannot+join.", WithMessage("/events/", "Event is full. Cannot join."))
	assert.Equal(t, "/events/?q=x&message=hi", WithMessage("/events/?q=x", "hi"))
}

func TestSafeRedirect(t *testing.T) {
	assert.Equal(t, "/my_events/", SafeRedirect("/my_events/", "/"))
	assert.Equal(t, "/join_event/3/?x=1", SafeRedirect("/join_event/3/?x=1", "/"))
	assert.Equal(t, "/", SafeRedirect("", "/"))
	assert.Equal(t, "/", SafeRedirect("https://evil.example", "/"))
	assert.Equal(t, "/", SafeRedirect("//evil.example", "/"))
	assert.Equal(t, "/", SafeRedirect("/\\evil.example", "/"))
}
