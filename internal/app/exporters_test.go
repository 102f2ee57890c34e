package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteICS(t *testing.T) {
	events := []*Event{
		testEvent(1, "TechFest 2024", 10),
		testEvent(2, "Cultural Night", 5),
	}
	events[0].Date, events[0].Time = "2024-11-15", "09:00"
	events[1].Date, events[1].Time = "2024-11-20", "18:30"

	var buf bytes.Buffer
	require.NoError(t, WriteICS(&buf, "Campus Events - Alice", events))
	body := buf.String()

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + ICSProductID,
		"X-WR-CALNAME:Campus Events - Alice",
		"BEGIN:VEVENT",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	for _, field := range requiredFields {
		assert.Contains(t, body, field)
	}

	// Timed events: date plus HH:MM start, two-hour default duration.
	assert.Contains(t, body, "DTSTART:20241115T090000")
	assert.Contains(t, body, "DTEND:20241115T110000")
	assert.Contains(t, body, "DTSTART:20241120T183000")

	assert.Contains(t, body, "SUMMARY:TechFest 2024")
	assert.Contains(t, body, "SUMMARY:Cultural Night")
	assert.Contains(t, body, "LOCATION:Main Hall, Tech Park")

	// Stable UIDs so calendar apps can match events across exports.
	assert.Contains(t, body, "UID:campus-event-1@campushub.events")
	assert.Contains(t, body, "UID:campus-event-2@campushub.events")
}

func TestWriteICSSkipsBrokenDates(t *testing.T) {
	broken := testEvent(1, "Broken", 1)
	broken.Date = "when it's ready"

	var buf bytes.Buffer
	require.NoError(t, WriteICS(&buf, "Test", []*Event{broken}))

	assert.Zero(t, strings.Count(buf.String(), "BEGIN:VEVENT"))
	assert.Contains(t, buf.String(), "END:VCALENDAR")
}

func TestWriteCSV(t *testing.T) {
	events := []*Event{testEvent(1, "TechFest 2024", 10)}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, events))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Id,Title,Category,District,Venue,Date,Time,Capacity,Attendees", lines[0])
	assert.Equal(t, "1,TechFest 2024,technical,Tech Park,Main Hall,2024-11-20,10:00,100,10", lines[1])
}

func TestWriteJSON(t *testing.T) {
	events := []*Event{testEvent(1, "TechFest 2024", 10)}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, "Campus Events", events))

	var doc struct {
		Name   string  `json:"name"`
		Events []Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "Campus Events", doc.Name)
	require.Len(t, doc.Events, 1)
	assert.Equal(t, "TechFest 2024", doc.Events[0].Title)
}
