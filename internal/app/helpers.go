package app

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// SortEventsByDate sorts events by date in ascending order
func SortEventsByDate(events []*Event) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
}

// FormatDate renders a YYYY-MM-DD date for display ("Nov 15, 2024"). The
// input is returned unchanged when it does not parse.
func FormatDate(date string) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("Jan 2, 2006")
}

// FormatTime renders an HH:MM time in 12-hour form ("6:30 PM"). The input is
// returned unchanged when it does not parse.
func FormatTime(t string) string {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return t
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return t
	}

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%s %s", displayHour, parts[1], ampm)
}
