package commands

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/campushub/campus-events/internal/app"
)

// Events dispatches the events subcommands.
func Events(args []string) {
	if len(args) < 1 {
		eventsUsage()
		os.Exit(2)
	}

	switch args[0] {
	case "list":
		listEvents(args[1:])
	case "create":
		createEvent(args[1:])
	case "view":
		viewEvent(args[1:])
	case "update":
		updateEvent(args[1:])
	case "delete":
		deleteEvent(args[1:])
	case "search":
		searchEvents(args[1:])
	case "upcoming":
		upcomingEvents()
	case "popular":
		popularEvents()
	case "stats":
		eventStats()
	default:
		eventsUsage()
		os.Exit(2)
	}
}

func eventsUsage() {
	fmt.Fprintln(os.Stderr, "Usage: campus-events events <subcommand>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Subcommands:")
	fmt.Fprintln(os.Stderr, "  list      List events, optionally filtered by -category or -district")
	fmt.Fprintln(os.Stderr, "  create    Create an event (organizers only)")
	fmt.Fprintln(os.Stderr, "  view      Show one event and remember it for enroll")
	fmt.Fprintln(os.Stderr, "  update    Update fields of an event")
	fmt.Fprintln(os.Stderr, "  delete    Delete an event")
	fmt.Fprintln(os.Stderr, "  search    Free-text search over title, description and venue")
	fmt.Fprintln(os.Stderr, "  upcoming  Events within the next 7 days")
	fmt.Fprintln(os.Stderr, "  popular   Top 10 events by attendee count")
	fmt.Fprintln(os.Stderr, "  stats     Catalog statistics")
}

func listEvents(args []string) {
	fs := flag.NewFlagSet("events list", flag.ExitOnError)
	category := fs.String("category", "", "Filter by category")
	district := fs.String("district", "", "Filter by district")
	fs.Parse(args)

	a := mustOpen()
	events := a.Events.Events()
	if *category != "" {
		events = a.Events.FilterByCategory(*category)
	}
	if *district != "" {
		events = a.Events.FilterByDistrict(*district)
	}
	printEvents(events)
}

func createEvent(args []string) {
	fs := flag.NewFlagSet("events create", flag.ExitOnError)
	data := app.EventData{}
	fs.StringVar(&data.Title, "title", "", "Event title")
	fs.StringVar(&data.Description, "description", "", "Event description")
	fs.StringVar(&data.Venue, "venue", "", "Venue")
	fs.StringVar(&data.Category, "category", "", "Category")
	fs.StringVar(&data.District, "district", "", "District")
	fs.StringVar(&data.Date, "date", "", "Date (YYYY-MM-DD)")
	fs.StringVar(&data.Time, "time", "", "Start time (HH:MM)")
	fs.IntVar(&data.Capacity, "capacity", 0, "Capacity")
	fs.Parse(args)

	a := mustOpen()
	user := requireUser(a)
	if user.Role != app.RoleOrganizer {
		fail("Only organizers can create events")
	}
	if data.Title == "" {
		fail("Event title is required")
	}

	event := a.Events.CreateEvent(data)
	fmt.Printf("Created event %d: %s\n", event.ID, event.Title)
}

func viewEvent(args []string) {
	if len(args) < 1 {
		fail("Usage: campus-events events view <id>")
	}

	a := mustOpen()
	event := a.Events.LookupEvent(args[0])
	if event == nil {
		fail("Event not found")
	}
	if err := a.ViewEvent(event.ID); err != nil {
		fail("Error: %v", err)
	}

	fmt.Printf("%s (id %d)\n", event.Title, event.ID)
	fmt.Printf("  %s\n", event.Description)
	fmt.Printf("  %s at %s\n", app.FormatDate(event.Date), app.FormatTime(event.Time))
	fmt.Printf("  %s, %s\n", event.Venue, event.District)
	fmt.Printf("  Category: %s\n", event.Category)
	fmt.Printf("  Attendees: %d / %d\n", event.Attendees, event.Capacity)
}

func updateEvent(args []string) {
	fs := flag.NewFlagSet("events update", flag.ExitOnError)
	id := fs.Int64("id", 0, "Event id")
	title := fs.String("title", "", "Event title")
	description := fs.String("description", "", "Event description")
	venue := fs.String("venue", "", "Venue")
	category := fs.String("category", "", "Category")
	district := fs.String("district", "", "District")
	date := fs.String("date", "", "Date (YYYY-MM-DD)")
	startTime := fs.String("time", "", "Start time (HH:MM)")
	capacity := fs.Int("capacity", 0, "Capacity")
	fs.Parse(args)

	a := mustOpen()
	user := requireUser(a)
	if user.Role != app.RoleOrganizer {
		fail("Only organizers can update events")
	}

	// Only flags that were actually set become part of the merge.
	var updates app.EventUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			updates.Title = title
		case "description":
			updates.Description = description
		case "venue":
			updates.Venue = venue
		case "category":
			updates.Category = category
		case "district":
			updates.District = district
		case "date":
			updates.Date = date
		case "time":
			updates.Time = startTime
		case "capacity":
			updates.Capacity = capacity
		}
	})

	event := a.Events.UpdateEvent(*id, updates)
	if event == nil {
		fail("Event not found")
	}
	fmt.Printf("Updated event %d: %s\n", event.ID, event.Title)
}

func deleteEvent(args []string) {
	if len(args) < 1 {
		fail("Usage: campus-events events delete <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fail("Invalid event id: %s", args[0])
	}

	a := mustOpen()
	user := requireUser(a)
	if user.Role != app.RoleOrganizer {
		fail("Only organizers can delete events")
	}

	if !a.Events.DeleteEvent(id) {
		fail("Event not found")
	}
	fmt.Printf("Deleted event %d\n", id)
}

func searchEvents(args []string) {
	if len(args) < 1 {
		fail("Usage: campus-events events search <query>")
	}
	a := mustOpen()
	printEvents(a.Events.SearchEvents(args[0]))
}

func upcomingEvents() {
	a := mustOpen()
	printEvents(a.Events.UpcomingEvents(time.Now()))
}

func popularEvents() {
	a := mustOpen()
	printEvents(a.Events.PopularEvents())
}

func eventStats() {
	a := mustOpen()
	stats := a.Events.GetStatistics()
	fmt.Printf("Events:     %d\n", stats.TotalEvents)
	fmt.Printf("Categories: %d\n", stats.TotalCategories)
	fmt.Printf("Districts:  %d\n", stats.TotalDistricts)
	fmt.Printf("Capacity:   %d\n", stats.TotalCapacity)
	fmt.Printf("Attendees:  %d\n", stats.TotalAttendees)
}

// printEvents renders events as an aligned table.
func printEvents(events []*app.Event) {
	if len(events) == 0 {
		fmt.Println("No events found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tDISTRICT\tDATE\tTIME\tATTENDEES")
	for _, e := range events {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%d/%d\n",
			e.ID, e.Title, e.Category, e.District,
			app.FormatDate(e.Date), app.FormatTime(e.Time), e.Attendees, e.Capacity)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing table: %v\n", err)
	}
}
