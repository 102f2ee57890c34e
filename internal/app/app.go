package app

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrUserNotFound is returned when a user id matches no account.
	ErrUserNotFound = errors.New("user not found")
	// ErrEventNotFound is returned when an event id matches no catalog entry.
	ErrEventNotFound = errors.New("event not found")
	// ErrAlreadyRegistered is returned when either side of an enrollment
	// already records it.
	ErrAlreadyRegistered = errors.New("already registered for this event")
	// ErrNotLoggedIn is returned by operations that need a session.
	ErrNotLoggedIn = errors.New("not logged in")
)

// App wires the store and the two components together. It is constructed
// once per process and passed to whatever consumes it.
type App struct {
	Config Config
	Store  Store
	Users  *Directory
	Events *Catalog
}

// New opens the file store at cfg.StorePath, loads the seed dataset and
// constructs the components around them.
func New(cfg Config) (*App, error) {
	store, err := NewFileStore(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", cfg.StorePath, err)
	}

	seed, err := LoadSeedEvents(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("load seed events: %w", err)
	}

	return NewWithStore(cfg, store, seed), nil
}

// NewWithStore builds an App over an existing store; tests inject a MemStore
// here.
func NewWithStore(cfg Config, store Store, seed []*Event) *App {
	return &App{
		Config: cfg,
		Store:  store,
		Users:  NewDirectory(store),
		Events: NewCatalog(store, seed, cfg.LegacyPopularSort),
	}
}

// Enroll records a registration on both sides of the user/event relationship.
// The two underlying operations are each one-sided; calling only one of them
// leaves a dangling cross-reference, so this checks both preconditions before
// applying either append.
func (a *App) Enroll(userID, eventID int64) error {
	user := a.Users.findByID(userID)
	if user == nil {
		return ErrUserNotFound
	}
	event := a.Events.GetEventByID(eventID)
	if event == nil {
		return ErrEventNotFound
	}
	for _, id := range user.RegisteredEvents {
		if id == eventID {
			return ErrAlreadyRegistered
		}
	}
	for _, id := range event.RegisteredUsers {
		if id == userID {
			return ErrAlreadyRegistered
		}
	}

	a.Users.RegisterForEvent(userID, eventID)
	a.Events.RegisterForEvent(eventID, userID)
	return nil
}

// EnrollCurrent enrolls the session user into the most recently viewed event,
// the legacy homepage registration flow.
func (a *App) EnrollCurrent() (*Event, error) {
	user := a.Users.CurrentUser()
	if user == nil {
		return nil, ErrNotLoggedIn
	}
	ref, ok := a.Store.GetItem(KeyEventID)
	if !ok {
		return nil, ErrEventNotFound
	}
	event := a.Events.LookupEvent(ref)
	if event == nil {
		return nil, ErrEventNotFound
	}
	if err := a.Enroll(user.ID, event.ID); err != nil {
		return nil, err
	}
	return event, nil
}

// ViewEvent records the event id being viewed, the hand-off context between
// pages.
func (a *App) ViewEvent(id int64) error {
	return a.Store.SetItem(KeyEventID, strconv.FormatInt(id, 10))
}

// ViewedEvent resolves the recorded event id, nil when none is set.
func (a *App) ViewedEvent() *Event {
	ref, ok := a.Store.GetItem(KeyEventID)
	if !ok {
		return nil
	}
	return a.Events.LookupEvent(ref)
}

// SelectDistrict records the district chosen during a browse flow.
func (a *App) SelectDistrict(district string) error {
	return a.Store.SetItem(KeySelectedDistrict, district)
}

// SelectedDistrict returns the recorded district, empty when none is set.
func (a *App) SelectedDistrict() string {
	district, _ := a.Store.GetItem(KeySelectedDistrict)
	return district
}
