package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/campushub/campus-events/internal/app"
)

// Export writes the session user's registered events as ICS, CSV or JSON.
func Export(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	format := fs.String("format", "ics", "Output format: ics, csv or json")
	out := fs.String("out", "", "Output file (default stdout)")
	all := fs.Bool("all", false, "Export the whole catalog instead of your registrations")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: campus-events export [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Exports your registered events as a calendar or spreadsheet.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	a := mustOpen()

	var events []*app.Event
	var calName string
	if *all {
		events = a.Events.Events()
		calName = "Campus Events"
	} else {
		user := requireUser(a)
		events = a.Events.EventsRegisteredBy(user.ID)
		calName = fmt.Sprintf("Campus Events - %s", user.Name)
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fail("Error: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Error closing %s: %v\n", *out, err)
			}
		}()
		w = f
	}

	var err error
	switch *format {
	case "ics":
		err = app.WriteICS(w, calName, events)
	case "csv":
		err = app.WriteCSV(w, events)
	case "json":
		err = app.WriteJSON(w, calName, events)
	default:
		fail("Unknown format: %s (want ics, csv or json)", *format)
	}
	if err != nil {
		fail("Error: %v", err)
	}
}
