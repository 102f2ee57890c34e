package main

import (
	"fmt"
	"os"

	"github.com/campushub/campus-events/internal/commands"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environment variables win either way
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "register":
		commands.Register(args)
	case "login":
		commands.Login(args)
	case "quick-login":
		commands.QuickLogin(args)
	case "logout":
		commands.Logout(args)
	case "whoami":
		commands.Whoami(args)
	case "profile":
		commands.Profile(args)
	case "events":
		commands.Events(args)
	case "enroll":
		commands.Enroll(args)
	case "browse":
		commands.Browse(args)
	case "export":
		commands.Export(args)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: campus-events <command> [arguments]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  register     Create an account")
	fmt.Fprintln(os.Stderr, "  login        Start a session")
	fmt.Fprintln(os.Stderr, "  quick-login  Log in by email alone, creating the account if needed")
	fmt.Fprintln(os.Stderr, "  logout       End the session")
	fmt.Fprintln(os.Stderr, "  whoami       Show the current session")
	fmt.Fprintln(os.Stderr, "  profile      Show or update your profile")
	fmt.Fprintln(os.Stderr, "  events       Browse and manage the event catalog")
	fmt.Fprintln(os.Stderr, "  enroll       Register for an event")
	fmt.Fprintln(os.Stderr, "  browse       Explore a district's events")
	fmt.Fprintln(os.Stderr, "  export       Export your registered events (ics, csv, json)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment variables:")
	fmt.Fprintln(os.Stderr, "  CAMPUS_EVENTS_STORE                Path to the data file")
	fmt.Fprintln(os.Stderr, "  CAMPUS_EVENTS_SEED                 Path to a seed dataset (YAML)")
	fmt.Fprintln(os.Stderr, "  CAMPUS_EVENTS_LEGACY_POPULAR_SORT  Keep the in-place popular sort (default true)")
}
