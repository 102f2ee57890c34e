package app

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

//go:embed seed.yaml
var defaultSeed []byte

// seedFile is the YAML document supplying the fallback event dataset.
type seedFile struct {
	Events []seedEvent `yaml:"events"`
}

type seedEvent struct {
	ID        int64 `yaml:"id"`
	EventData `yaml:",inline"`
	Attendees int `yaml:"attendees"`
}

// LoadSeedEvents parses the seed dataset: the file at path when given,
// otherwise the embedded default. The seed is only consulted when no events
// have been persisted yet.
func LoadSeedEvents(path string) ([]*Event, error) {
	data := defaultSeed
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		data = fileData
	}

	var doc seedFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	events := make([]*Event, 0, len(doc.Events))
	for _, s := range doc.Events {
		events = append(events, &Event{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Venue:       s.Venue,
			Category:    s.Category,
			District:    s.District,
			Date:        s.Date,
			Time:        s.Time,
			Capacity:    s.Capacity,
			Attendees:   s.Attendees,
		})
	}
	return events, nil
}
