package app

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// WriteICS writes an iCalendar document for the given events. Events carry a
// date plus an HH:MM start time; entries whose date or time does not parse
// are skipped.
func WriteICS(w io.Writer, calName string, events []*Event) error {
	fmt.Fprintln(w, "BEGIN:VCALENDAR")
	fmt.Fprintln(w, "VERSION:2.0")
	fmt.Fprintf(w, "PRODID:%s\n", ICSProductID)
	fmt.Fprintf(w, "X-WR-CALNAME:%s\n", calName)
	fmt.Fprintf(w, "X-WR-TIMEZONE:%s\n", ICSTimezone)
	fmt.Fprintln(w, "CALSCALE:GREGORIAN")

	for _, event := range events {
		start, err := time.Parse(DateLayout+" "+TimeLayout, event.Date+" "+event.Time)
		if err != nil {
			continue
		}
		end := start.Add(2 * time.Hour)

		// UID must be stable across exports for calendar apps to update
		uid := fmt.Sprintf("campus-event-%d@campushub.events", event.ID)

		fmt.Fprintln(w, "BEGIN:VEVENT")
		fmt.Fprintf(w, "UID:%s\n", uid)
		fmt.Fprintf(w, "DTSTAMP:%s\n", time.Now().UTC().Format("20060102T150405Z"))
		fmt.Fprintf(w, "DTSTART:%s\n", start.Format("20060102T150405"))
		fmt.Fprintf(w, "DTEND:%s\n", end.Format("20060102T150405"))
		fmt.Fprintf(w, "SUMMARY:%s\n", event.Title)
		fmt.Fprintf(w, "DESCRIPTION:%s\n", event.Description)
		fmt.Fprintf(w, "LOCATION:%s, %s\n", event.Venue, event.District)
		fmt.Fprintln(w, "END:VEVENT")
	}

	_, err := fmt.Fprintln(w, "END:VCALENDAR")
	return err
}

// WriteCSV writes the events as CSV rows.
func WriteCSV(w io.Writer, events []*Event) error {
	if _, err := fmt.Fprintln(w, "Id,Title,Category,District,Venue,Date,Time,Capacity,Attendees"); err != nil {
		return err
	}
	for _, e := range events {
		_, err := fmt.Fprintf(w, "%d,%s,%s,%s,%s,%s,%s,%d,%d\n",
			e.ID, e.Title, e.Category, e.District, e.Venue, e.Date, e.Time, e.Capacity, e.Attendees)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the events as a single JSON document.
func WriteJSON(w io.Writer, calName string, events []*Event) error {
	data := map[string]interface{}{
		"name":   calName,
		"events": events,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
