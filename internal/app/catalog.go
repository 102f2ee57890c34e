package app

import (
	"encoding/json"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Catalog owns the event list. It is initialized from the store's events key
// when present, otherwise from the seed dataset; the seed is only written
// back on the first mutation, matching the lazy bootstrap of the system it
// replaces.
type Catalog struct {
	store  Store
	events []*Event
	// legacyPopularSort keeps PopularEvents sorting the live list in place,
	// which permanently reorders the catalog as a side effect of a read.
	legacyPopularSort bool
}

// NewCatalog constructs a Catalog over store, falling back to seed when no
// events have been persisted yet.
func NewCatalog(store Store, seed []*Event, legacyPopularSort bool) *Catalog {
	c := &Catalog{store: store, legacyPopularSort: legacyPopularSort}

	if raw, ok := store.GetItem(KeyEvents); ok {
		if err := json.Unmarshal([]byte(raw), &c.events); err != nil {
			log.Printf("Error parsing stored events: %v", err)
			c.events = nil
		}
		return c
	}
	c.events = seed
	return c
}

// CreateEvent assigns the next id (one past the current maximum, 1 for an
// empty catalog), forces the attendee count to 1 for the creator, appends
// and persists.
func (c *Catalog) CreateEvent(data EventData) *Event {
	var maxID int64
	for _, e := range c.events {
		if e.ID > maxID {
			maxID = e.ID
		}
	}

	event := &Event{
		ID:          maxID + 1,
		Title:       data.Title,
		Description: data.Description,
		Venue:       data.Venue,
		Category:    data.Category,
		District:    data.District,
		Date:        data.Date,
		Time:        data.Time,
		Capacity:    data.Capacity,
		Attendees:   1,
	}
	c.events = append(c.events, event)
	c.save()
	return event
}

// UpdateEvent shallow-merges updates into the event with the given id and
// persists. Returns nil when the id is unknown.
func (c *Catalog) UpdateEvent(id int64, updates EventUpdate) *Event {
	event := c.GetEventByID(id)
	if event == nil {
		return nil
	}

	if updates.Title != nil {
		event.Title = *updates.Title
	}
	if updates.Description != nil {
		event.Description = *updates.Description
	}
	if updates.Venue != nil {
		event.Venue = *updates.Venue
	}
	if updates.Category != nil {
		event.Category = *updates.Category
	}
	if updates.District != nil {
		event.District = *updates.District
	}
	if updates.Date != nil {
		event.Date = *updates.Date
	}
	if updates.Time != nil {
		event.Time = *updates.Time
	}
	if updates.Capacity != nil {
		event.Capacity = *updates.Capacity
	}
	c.save()
	return event
}

// DeleteEvent removes the event with the given id and persists. Returns
// false when the id is unknown.
func (c *Catalog) DeleteEvent(id int64) bool {
	for i, e := range c.events {
		if e.ID == id {
			c.events = append(c.events[:i], c.events[i+1:]...)
			c.save()
			return true
		}
	}
	return false
}

// GetEventByID returns the event with the given id, or nil.
func (c *Catalog) GetEventByID(id int64) *Event {
	for _, e := range c.events {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// LookupEvent resolves a string-typed id, as handed between pages through the
// eventId store key. Compatibility path: ids arrive as strings there.
func (c *Catalog) LookupEvent(ref string) *Event {
	id, err := strconv.ParseInt(strings.TrimSpace(ref), 10, 64)
	if err != nil {
		return nil
	}
	return c.GetEventByID(id)
}

// FilterByCategory returns the events with an exactly matching category, in
// catalog order.
func (c *Catalog) FilterByCategory(category string) []*Event {
	var out []*Event
	for _, e := range c.events {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// FilterByDistrict returns the events with an exactly matching district, in
// catalog order.
func (c *Catalog) FilterByDistrict(district string) []*Event {
	var out []*Event
	for _, e := range c.events {
		if e.District == district {
			out = append(out, e)
		}
	}
	return out
}

// SearchEvents matches query case-insensitively against title, description
// and venue.
func (c *Catalog) SearchEvents(query string) []*Event {
	q := strings.ToLower(query)
	var out []*Event
	for _, e := range c.events {
		if strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Description), q) ||
			strings.Contains(strings.ToLower(e.Venue), q) {
			out = append(out, e)
		}
	}
	return out
}

// UpcomingEvents returns the events dated within [now, now+7d] inclusive,
// ascending by date. Events whose date does not parse never satisfy the
// window check and are excluded.
func (c *Catalog) UpcomingEvents(now time.Time) []*Event {
	nextWeek := now.Add(7 * 24 * time.Hour)

	var out []*Event
	for _, e := range c.events {
		d, err := time.Parse(DateLayout, e.Date)
		if err != nil {
			continue
		}
		if !d.Before(now) && !d.After(nextWeek) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// PopularEvents returns the top 10 events by attendee count, descending.
// With legacyPopularSort set this sorts the live catalog in place before
// slicing, so repeated calls reorder the persisted catalog — the behaviour
// of the system it replaces, kept behind a visible switch.
func (c *Catalog) PopularEvents() []*Event {
	events := c.events
	if !c.legacyPopularSort {
		events = make([]*Event, len(c.events))
		copy(events, c.events)
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Attendees > events[j].Attendees
	})

	if len(events) > 10 {
		events = events[:10]
	}
	return events
}

// RegisterForEvent appends userID to the event's registration list and
// increments the attendee count. Idempotent: returns false when the event is
// unknown or the user is already registered. This updates the event side of
// the relationship only; the user side is Directory.RegisterForEvent.
func (c *Catalog) RegisterForEvent(eventID, userID int64) bool {
	event := c.GetEventByID(eventID)
	if event == nil {
		return false
	}
	for _, id := range event.RegisteredUsers {
		if id == userID {
			return false
		}
	}
	event.RegisteredUsers = append(event.RegisteredUsers, userID)
	event.Attendees++
	c.save()
	return true
}

// EventsRegisteredBy returns all events whose registration list contains
// userID.
func (c *Catalog) EventsRegisteredBy(userID int64) []*Event {
	var out []*Event
	for _, e := range c.events {
		for _, id := range e.RegisteredUsers {
			if id == userID {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// GetStatistics aggregates the catalog: totals plus distinct category and
// district counts.
func (c *Catalog) GetStatistics() Statistics {
	categories := make(map[string]struct{})
	districts := make(map[string]struct{})
	stats := Statistics{TotalEvents: len(c.events)}

	for _, e := range c.events {
		categories[e.Category] = struct{}{}
		districts[e.District] = struct{}{}
		stats.TotalCapacity += e.Capacity
		stats.TotalAttendees += e.Attendees
	}
	stats.TotalCategories = len(categories)
	stats.TotalDistricts = len(districts)
	return stats
}

// Events returns the catalog contents (shared slice, callers must not
// mutate).
func (c *Catalog) Events() []*Event {
	return c.events
}

// save rewrites the full event list to the store.
func (c *Catalog) save() {
	data, err := json.Marshal(c.events)
	if err != nil {
		log.Printf("Error serializing events: %v", err)
		return
	}
	if err := c.store.SetItem(KeyEvents, string(data)); err != nil {
		log.Printf("Error persisting events: %v", err)
	}
}
