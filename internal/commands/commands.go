// Package commands implements the CLI subcommands of the campus-events
// binary. Each command opens the shared store, performs one operation and
// exits, the way a page load in the original interface did.
package commands

import (
	"fmt"
	"os"

	"github.com/campushub/campus-events/internal/app"
)

// mustOpen builds the application from the environment configuration, or
// exits.
func mustOpen() *app.App {
	a, err := app.New(app.LoadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return a
}

// requireUser returns the session user, or exits.
func requireUser(a *app.App) *app.User {
	user := a.Users.CurrentUser()
	if user == nil {
		fmt.Fprintln(os.Stderr, "Please login first")
		os.Exit(1)
	}
	return user
}

// fail prints msg to stderr and exits.
func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
