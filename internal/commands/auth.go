package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/campushub/campus-events/internal/app"
)

// validRole reports whether role is one of the two known roles.
func validRole(role string) bool {
	return role == app.RoleStudent || role == app.RoleOrganizer
}

// Register handles the register subcommand.
func Register(args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "Account email")
	name := fs.String("name", "", "Display name")
	role := fs.String("role", app.RoleStudent, "Role: student or organizer")
	fs.Parse(args)

	if *email == "" {
		*email = readInput("Enter your college email: ")
	}
	if *email == "" {
		fail("Email cannot be empty")
	}
	if !validRole(*role) {
		fail("Role must be %q or %q", app.RoleStudent, app.RoleOrganizer)
	}
	if *name == "" {
		*name = readInput("Enter your name: ")
	}

	password := readPasswordWithMask("Enter password:   ")
	passwordConfirm := readPasswordWithMask("Confirm password: ")
	if password != passwordConfirm {
		fail("Passwords do not match")
	}

	a := mustOpen()
	result := a.Users.Register(*email, password, *name, *role)
	if !result.Success {
		fail("%s", result.Message)
	}
	fmt.Printf("%s: %s (%s, id %d)\n", result.Message, result.User.Name, result.User.Role, result.User.ID)
	fmt.Println("Use the login command to start a session.")
}

// Login handles the login subcommand.
func Login(args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "Account email")
	role := fs.String("role", app.RoleStudent, "Role: student or organizer")
	fs.Parse(args)

	if *email == "" {
		*email = readInput("Enter your college email: ")
	}
	if !validRole(*role) {
		fail("Role must be %q or %q", app.RoleStudent, app.RoleOrganizer)
	}
	password := readPasswordWithMask("Enter password: ")

	a := mustOpen()
	result := a.Users.Login(*email, password, *role)
	if !result.Success {
		fail("%s", result.Message)
	}
	fmt.Printf("Welcome back, %s (%s)\n", result.User.Name, result.User.Role)
}

// QuickLogin handles the quick-login subcommand: log in by email alone,
// creating the account on the fly when it does not exist.
func QuickLogin(args []string) {
	fs := flag.NewFlagSet("quick-login", flag.ExitOnError)
	email := fs.String("email", "", "Account email")
	role := fs.String("role", app.RoleStudent, "Role: student or organizer")
	fs.Parse(args)

	if *email == "" {
		*email = readInput("Enter your college email: ")
	}
	if *email == "" {
		fail("Email cannot be empty")
	}
	if !validRole(*role) {
		fail("Role must be %q or %q", app.RoleStudent, app.RoleOrganizer)
	}

	a := mustOpen()
	result := a.Users.QuickLogin(*email, *role)
	fmt.Printf("Logged in as %s (%s)\n", result.User.Name, result.User.Role)
}

// Logout handles the logout subcommand.
func Logout(args []string) {
	a := mustOpen()
	a.Users.Logout()
	fmt.Println("Logged out")
}

// Whoami prints the current session.
func Whoami(args []string) {
	a := mustOpen()
	user := a.Users.CurrentUser()
	if user == nil {
		fmt.Println("Not logged in")
		os.Exit(0)
	}
	fmt.Printf("%s <%s> (%s, id %d)\n", user.Name, user.Email, user.Role, user.ID)
	if district := a.SelectedDistrict(); district != "" {
		fmt.Printf("Browsing district: %s\n", district)
	}
}

// Profile handles the profile subcommand: show or update the session user.
func Profile(args []string) {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	name := fs.String("name", "", "New display name")
	email := fs.String("email", "", "New email")
	password := fs.Bool("password", false, "Prompt for a new password")
	fs.Parse(args)

	a := mustOpen()
	user := requireUser(a)

	var updates app.ProfileUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			updates.Name = name
		case "email":
			updates.Email = email
		}
	})
	if *password {
		newPassword := readPasswordWithMask("New password: ")
		updates.Password = &newPassword
	}

	if updates.Name == nil && updates.Email == nil && updates.Password == nil {
		fmt.Printf("%s <%s> (%s, id %d)\n", user.Name, user.Email, user.Role, user.ID)
		return
	}

	if !a.Users.UpdateProfile(user.ID, updates) {
		fail("User not found")
	}
	updated := a.Users.CurrentUser()
	fmt.Printf("Profile updated: %s <%s>\n", updated.Name, updated.Email)
}
