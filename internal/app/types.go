// Package app holds the campus events domain: the user directory, the event
// catalog, and the key-value store both are persisted to.
package app

import "time"

// User is a registered account. Quick-login accounts have no password.
type User struct {
	ID               int64     `json:"id"`
	Email            string    `json:"email"`
	Password         string    `json:"password,omitempty"` // stored in plain text, legacy behaviour
	Name             string    `json:"name"`
	Role             string    `json:"role"` // RoleStudent or RoleOrganizer
	RegisteredEvents []int64   `json:"registeredEvents"`
	CreatedEvents    []int64   `json:"createdEvents"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Event is a single catalog entry.
type Event struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Venue           string  `json:"venue"`
	Category        string  `json:"category"`
	District        string  `json:"district"`
	Date            string  `json:"date"` // YYYY-MM-DD
	Time            string  `json:"time"` // HH:MM
	Capacity        int     `json:"capacity"`
	Attendees       int     `json:"attendees"`
	RegisteredUsers []int64 `json:"registeredUsers,omitempty"` // created lazily on first registration
}

// EventData carries the caller-supplied fields for a new event. The id and
// attendee count are assigned by the catalog.
type EventData struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Venue       string `json:"venue" yaml:"venue"`
	Category    string `json:"category" yaml:"category"`
	District    string `json:"district" yaml:"district"`
	Date        string `json:"date" yaml:"date"`
	Time        string `json:"time" yaml:"time"`
	Capacity    int    `json:"capacity" yaml:"capacity"`
}

// EventUpdate is a shallow merge into an existing event: nil fields are left
// unchanged.
type EventUpdate struct {
	Title       *string
	Description *string
	Venue       *string
	Category    *string
	District    *string
	Date        *string
	Time        *string
	Capacity    *int
}

// ProfileUpdate is a shallow merge into a user record: nil fields are left
// unchanged.
type ProfileUpdate struct {
	Email    *string
	Password *string
	Name     *string
}

// AuthResult is the outcome of a register or login attempt.
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// Statistics aggregates the catalog.
type Statistics struct {
	TotalEvents     int `json:"totalEvents"`
	TotalCategories int `json:"totalCategories"`
	TotalDistricts  int `json:"totalDistricts"`
	TotalCapacity   int `json:"totalCapacity"`
	TotalAttendees  int `json:"totalAttendees"`
}
