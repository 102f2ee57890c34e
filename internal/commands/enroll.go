package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/campushub/campus-events/internal/app"
)

// Enroll registers the session user for an event, updating both the user's
// enrollment list and the event's registration list. With no argument it
// falls back to the most recently viewed event.
func Enroll(args []string) {
	a := mustOpen()
	user := requireUser(a)

	var event *app.Event
	if len(args) > 0 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fail("Invalid event id: %s", args[0])
		}
		event = a.Events.GetEventByID(id)
		if event == nil {
			fail("Event not found")
		}
		err = a.Enroll(user.ID, event.ID)
		reportEnroll(event, err)
		return
	}

	event, err := a.EnrollCurrent()
	reportEnroll(event, err)
}

func reportEnroll(event *app.Event, err error) {
	switch {
	case err == nil:
		fmt.Printf("Successfully registered for %s!\n", event.Title)
	case errors.Is(err, app.ErrAlreadyRegistered):
		fail("You are already registered for this event")
	case errors.Is(err, app.ErrEventNotFound):
		fail("Event not found (use 'events view <id>' first or pass an id)")
	default:
		fail("Error: %v", err)
	}
}

// Browse selects a district, quick-logging the user in when no session
// exists, and lists the district's events.
func Browse(args []string) {
	if len(args) < 1 {
		fail("Usage: campus-events browse <district>")
	}
	district := args[0]

	a := mustOpen()
	if !a.Users.IsAuthenticated() {
		email := readInput("Enter your college email to explore " + district + ": ")
		if email == "" {
			fail("Email cannot be empty")
		}
		role := app.RoleStudent
		if answer := readInput("Are you an organizer? (y/N): "); answer == "y" || answer == "yes" {
			role = app.RoleOrganizer
		}
		a.Users.QuickLogin(email, role)
	}

	if err := a.SelectDistrict(district); err != nil {
		fail("Error: %v", err)
	}
	printEvents(a.Events.FilterByDistrict(district))
}
