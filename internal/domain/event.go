package domain

import "time"

// PlaceholderImageURL is served when an event has no image of its own.
const PlaceholderImageURL = "/placeholder-event.svg"

// Event is a catalog item visible to viewers at or above Tier.
type Event struct {
	ID          string
	Title       string
	Description string
	EventDate   time.Time
	ImageURL    string
	Tier        Tier
	CreatedAt   time.Time
}

// Image returns the event image or the placeholder.
func (e Event) Image() string {
	if e.ImageURL == "" {
		return PlaceholderImageURL
	}
	return e.ImageURL
}
