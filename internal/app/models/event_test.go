package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvent_IsFull(t *testing.T) {
	e := &Event{TotalPlayers: 2}
	assert.False(t, e.IsFull(0))
	assert.False(t, e.IsFull(1))
	assert.True(t, e.IsFull(2))
	assert.True(t, e.IsFull(3))
}

func TestEvent_IsOrganizedBy(t *testing.T) {
	organizer := int64(7)
	e := &Event{OrganizerID: &organizer}
	assert.True(t, e.IsOrganizedBy(7))
	assert.False(t, e.IsOrganizedBy(8))

	orphan := &Event{}
	assert.False(t, orphan.IsOrganizedBy(7))
}

func TestEvent_IsPast(t *testing.T) {
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, (&Event{Date: today.AddDate(0, 0, -1)}).IsPast(today))
	assert.False(t, (&Event{Date: today}).IsPast(today))
	assert.False(t, (&Event{Date: today.AddDate(0, 0, 1)}).IsPast(today))
}

func TestEvent_Matches(t *testing.T) {
	e := &Event{Name: "Sunday Football", Location: "Hyde Park"}
	assert.True(t, e.Matches("football"))
	assert.True(t, e.Matches("PARK"))
	assert.False(t, e.Matches("tennis"))
}

func TestIsSport(t *testing.T) {
	assert.True(t, IsSport("Table Tennis"))
	assert.False(t, IsSport("table tennis"))
	assert.False(t, IsSport("Chess"))
}
