package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, events ...*Event) *App {
	t.Helper()
	a := NewWithStore(Config{LegacyPopularSort: true}, NewMemStore(), events)
	a.Users = newTestDirectory(a.Store)
	return a
}

func TestEnroll(t *testing.T) {
	a := newTestApp(t, testEvent(1, "TechFest 2024", 1))
	reg := a.Users.Register("alice@college.edu", "secret", "Alice", RoleStudent)
	require.True(t, reg.Success)

	require.NoError(t, a.Enroll(reg.User.ID, 1))

	// Both sides of the relationship are recorded.
	assert.Equal(t, []int64{1}, a.Users.RegisteredEventIDs(reg.User.ID))
	event := a.Events.GetEventByID(1)
	assert.Equal(t, []int64{reg.User.ID}, event.RegisteredUsers)
	assert.Equal(t, 2, event.Attendees)

	// A repeat enrollment is rejected before either side changes.
	assert.ErrorIs(t, a.Enroll(reg.User.ID, 1), ErrAlreadyRegistered)
	assert.Equal(t, 2, event.Attendees)
	assert.Equal(t, []int64{1}, a.Users.RegisteredEventIDs(reg.User.ID))
}

func TestEnrollErrors(t *testing.T) {
	a := newTestApp(t, testEvent(1, "TechFest 2024", 1))
	reg := a.Users.Register("alice@college.edu", "secret", "Alice", RoleStudent)
	require.True(t, reg.Success)

	assert.ErrorIs(t, a.Enroll(9999, 1), ErrUserNotFound)
	assert.ErrorIs(t, a.Enroll(reg.User.ID, 42), ErrEventNotFound)

	// Nothing was applied on the failed attempts.
	assert.Empty(t, a.Users.RegisteredEventIDs(reg.User.ID))
	assert.Equal(t, 1, a.Events.GetEventByID(1).Attendees)
}

// The two one-sided registration operations are intentionally not linked:
// calling only one of them produces a dangling cross-reference. That gap is
// why Enroll exists; this pins the legacy behaviour so nobody "fixes" it
// inside the components.
func TestOneSidedRegistrationDiverges(t *testing.T) {
	a := newTestApp(t, testEvent(1, "TechFest 2024", 1))
	reg := a.Users.Register("alice@college.edu", "secret", "Alice", RoleStudent)
	require.True(t, reg.Success)

	// User side only.
	require.True(t, a.Users.RegisterForEvent(reg.User.ID, 1))

	event := a.Events.GetEventByID(1)
	assert.Empty(t, event.RegisteredUsers, "event side untouched")
	assert.Equal(t, 1, event.Attendees)
	assert.Equal(t, []int64{1}, a.Users.RegisteredEventIDs(reg.User.ID))
}

func TestEnrollCurrent(t *testing.T) {
	a := newTestApp(t, testEvent(1, "TechFest 2024", 1))

	_, err := a.EnrollCurrent()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	login := a.Users.QuickLogin("alice@college.edu", RoleStudent)
	require.True(t, login.Success)

	_, err = a.EnrollCurrent()
	assert.ErrorIs(t, err, ErrEventNotFound, "no event viewed yet")

	require.NoError(t, a.ViewEvent(1))
	event, err := a.EnrollCurrent()
	require.NoError(t, err)
	assert.Equal(t, "TechFest 2024", event.Title)
	assert.Equal(t, []int64{1}, a.Users.RegisteredEventIDs(login.User.ID))
}

func TestViewEvent(t *testing.T) {
	a := newTestApp(t, testEvent(3, "TechFest 2024", 1))

	assert.Nil(t, a.ViewedEvent())

	require.NoError(t, a.ViewEvent(3))
	// The id is handed off through the store as a plain string.
	raw, ok := a.Store.GetItem(KeyEventID)
	require.True(t, ok)
	assert.Equal(t, "3", raw)

	event := a.ViewedEvent()
	require.NotNil(t, event)
	assert.Equal(t, int64(3), event.ID)
}

func TestSelectDistrict(t *testing.T) {
	a := newTestApp(t)

	assert.Empty(t, a.SelectedDistrict())
	require.NoError(t, a.SelectDistrict("Tech Park"))
	assert.Equal(t, "Tech Park", a.SelectedDistrict())

	raw, ok := a.Store.GetItem(KeySelectedDistrict)
	require.True(t, ok)
	assert.Equal(t, "Tech Park", raw)
}

func TestNewUsesFileStoreAndSeed(t *testing.T) {
	cfg := Config{
		StorePath:         filepath.Join(t.TempDir(), DefaultStoreFile),
		LegacyPopularSort: true,
	}

	a, err := New(cfg)
	require.NoError(t, err)
	require.NotEmpty(t, a.Events.Events(), "embedded seed populates an empty store")

	// A mutation persists; a second App over the same path sees it.
	created := a.Events.CreateEvent(EventData{Title: "Persisted", Description: "d", Venue: "v"})

	b, err := New(cfg)
	require.NoError(t, err)
	assert.NotNil(t, b.Events.GetEventByID(created.ID))
}
