package app

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"
)

// Directory owns the registered users and the single current-session pointer.
// Passwords are stored and compared as plain strings; this mirrors the legacy
// system it replaces and is a documented insecurity, not an oversight.
type Directory struct {
	store   Store
	users   []*User
	current *User
	// now is swappable in tests; user ids are creation time in milliseconds
	now func() time.Time
}

// NewDirectory loads the user list and any persisted session from store.
func NewDirectory(store Store) *Directory {
	d := &Directory{store: store, now: time.Now}

	if raw, ok := store.GetItem(KeyUsers); ok {
		if err := json.Unmarshal([]byte(raw), &d.users); err != nil {
			log.Printf("Error parsing stored users: %v", err)
			d.users = nil
		}
	}
	return d
}

// Register creates a new account. The duplicate-email check deliberately
// ignores the role: an email can exist under one role only, unlike the
// quick-login path. The session is not touched.
func (d *Directory) Register(email, password, name, role string) AuthResult {
	for _, u := range d.users {
		if u.Email == email {
			return AuthResult{Success: false, Message: MsgEmailRegistered}
		}
	}

	user := &User{
		ID:               d.now().UnixMilli(),
		Email:            email,
		Password:         password,
		Name:             name,
		Role:             role,
		RegisteredEvents: []int64{},
		CreatedEvents:    []int64{},
		CreatedAt:        d.now(),
	}
	d.users = append(d.users, user)
	d.saveUsers()
	return AuthResult{Success: true, Message: MsgRegistrationOK, User: user}
}

// Login matches on the exact (email, role) pair, then compares passwords as
// plain strings. An account created via QuickLogin has an empty password, so
// logging into it succeeds only with an empty password.
func (d *Directory) Login(email, password, role string) AuthResult {
	user := d.find(email, role)
	if user == nil {
		return AuthResult{Success: false, Message: MsgInvalidCredentials}
	}
	if user.Password != password {
		return AuthResult{Success: false, Message: MsgInvalidPassword}
	}

	d.setSession(user)
	return AuthResult{Success: true, Message: MsgLoginOK, User: user}
}

// QuickLogin looks up (email, role) and silently creates the account if it
// does not exist, deriving the display name from the local part of the email.
// It never fails and never checks a password.
func (d *Directory) QuickLogin(email, role string) AuthResult {
	user := d.find(email, role)
	if user == nil {
		user = &User{
			ID:               d.now().UnixMilli(),
			Email:            email,
			Name:             strings.SplitN(email, "@", 2)[0],
			Role:             role,
			RegisteredEvents: []int64{},
			CreatedEvents:    []int64{},
			CreatedAt:        d.now(),
		}
		d.users = append(d.users, user)
		d.saveUsers()
	}

	d.setSession(user)
	return AuthResult{Success: true, User: user}
}

// Logout clears the in-memory session and all four persisted session keys.
// Idempotent.
func (d *Directory) Logout() {
	d.current = nil
	for _, key := range []string{KeyCurrentUser, KeyUserRole, KeyUserEmail, KeyUserID} {
		if err := d.store.RemoveItem(key); err != nil {
			log.Printf("Error clearing session key %s: %v", key, err)
		}
	}
}

// CurrentUser returns the session user, rehydrating from the store when this
// Directory was constructed in a fresh process.
func (d *Directory) CurrentUser() *User {
	if d.current != nil {
		return d.current
	}
	raw, ok := d.store.GetItem(KeyCurrentUser)
	if !ok {
		return nil
	}
	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Printf("Error parsing stored session: %v", err)
		return nil
	}
	d.current = &user
	return d.current
}

// IsAuthenticated reports whether a session exists.
func (d *Directory) IsAuthenticated() bool {
	return d.CurrentUser() != nil
}

// UpdateProfile shallow-merges updates into the user with the given id and
// refreshes the session copies when that user is logged in. Returns false if
// the user is unknown.
func (d *Directory) UpdateProfile(userID int64, updates ProfileUpdate) bool {
	user := d.findByID(userID)
	if user == nil {
		return false
	}

	if updates.Email != nil {
		user.Email = *updates.Email
	}
	if updates.Password != nil {
		user.Password = *updates.Password
	}
	if updates.Name != nil {
		user.Name = *updates.Name
	}
	d.saveUsers()

	if d.current != nil && d.current.ID == userID {
		d.setSession(user)
	}
	return true
}

// RegisterForEvent appends eventID to the user's enrollment list. Returns
// false if the user is unknown or already enrolled. This updates the user
// side of the relationship only; the event side is Catalog.RegisterForEvent.
func (d *Directory) RegisterForEvent(userID, eventID int64) bool {
	user := d.findByID(userID)
	if user == nil {
		return false
	}
	for _, id := range user.RegisteredEvents {
		if id == eventID {
			return false
		}
	}
	user.RegisteredEvents = append(user.RegisteredEvents, eventID)
	d.saveUsers()
	return true
}

// RegisteredEventIDs returns the user's enrollment list, empty for an unknown
// user.
func (d *Directory) RegisteredEventIDs(userID int64) []int64 {
	user := d.findByID(userID)
	if user == nil {
		return []int64{}
	}
	return user.RegisteredEvents
}

// Users returns the directory contents (shared slice, callers must not
// mutate).
func (d *Directory) Users() []*User {
	return d.users
}

func (d *Directory) find(email, role string) *User {
	for _, u := range d.users {
		if u.Email == email && u.Role == role {
			return u
		}
	}
	return nil
}

func (d *Directory) findByID(id int64) *User {
	for _, u := range d.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// setSession points the session at user and mirrors it into the four
// persisted session keys.
func (d *Directory) setSession(user *User) {
	d.current = user

	data, err := json.Marshal(user)
	if err != nil {
		log.Printf("Error serializing session: %v", err)
		return
	}
	d.setItem(KeyCurrentUser, string(data))
	d.setItem(KeyUserRole, user.Role)
	d.setItem(KeyUserEmail, user.Email)
	d.setItem(KeyUserID, strconv.FormatInt(user.ID, 10))
}

// saveUsers rewrites the full user list to the store.
func (d *Directory) saveUsers() {
	data, err := json.Marshal(d.users)
	if err != nil {
		log.Printf("Error serializing users: %v", err)
		return
	}
	d.setItem(KeyUsers, string(data))
}

func (d *Directory) setItem(key, value string) {
	if err := d.store.SetItem(key, value); err != nil {
		log.Printf("Error persisting %s: %v", key, err)
	}
}
