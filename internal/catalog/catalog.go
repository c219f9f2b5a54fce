package catalog

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/jayraj2301/Tier-Base-Showcase/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed sample_events.yaml
var sampleEventsYAML []byte

type file struct {
	Events []entry `yaml:"events"`
}

type entry struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	EventDate   time.Time `yaml:"event_date"`
	ImageURL    string    `yaml:"image_url"`
	Tier        string    `yaml:"tier"`
}

// Sample returns the embedded seed catalog. IDs are left empty; the caller
// assigns them on insert.
func Sample() ([]domain.Event, error) {
	return Parse(sampleEventsYAML)
}

// Parse decodes a catalog document and validates every entry.
func Parse(data []byte) ([]domain.Event, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	events := make([]domain.Event, 0, len(f.Events))
	for i, e := range f.Events {
		if e.Title == "" {
			return nil, fmt.Errorf("catalog entry %d: title required", i)
		}
		if e.EventDate.IsZero() {
			return nil, fmt.Errorf("catalog entry %d: event_date required", i)
		}
		tier, err := domain.ParseTier(e.Tier)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		events = append(events, domain.Event{
			Title:       e.Title,
			Description: e.Description,
			EventDate:   e.EventDate.UTC(),
			ImageURL:    e.ImageURL,
			Tier:        tier,
		})
	}
	return events, nil
}
