package http

import (
	"time"

	"github.com/jayraj2301/Tier-Base-Showcase/internal/app"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/domain"
)

type eventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	ImageURL    *string   `json:"image_url"`
	Tier        string    `json:"tier"`
	CreatedAt   time.Time `json:"created_at"`
}

type eventAccessResponse struct {
	eventResponse
	Accessible    bool   `json:"accessible"`
	Locked        bool   `json:"locked"`
	LockedMessage string `json:"locked_message,omitempty"`
}

type tierChoiceResponse struct {
	Tier    string `json:"tier"`
	Current bool   `json:"current"`
}

type tierOptionsResponse struct {
	Current    string               `json:"current"`
	CanAdvance bool                 `json:"can_advance"`
	Next       string               `json:"next,omitempty"`
	Choices    []tierChoiceResponse `json:"choices"`
}

type listingResponse struct {
	ViewerID      string                `json:"viewer_id"`
	Tier          string                `json:"tier"`
	Available     []eventResponse       `json:"available"`
	All           []eventAccessResponse `json:"all"`
	UpgradePrompt bool                  `json:"upgrade_prompt"`
	TierOptions   tierOptionsResponse   `json:"tier_options"`
}

func toEventResponse(event domain.Event) eventResponse {
	resp := eventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		EventDate:   event.EventDate,
		Tier:        string(event.Tier),
		CreatedAt:   event.CreatedAt,
	}
	if event.ImageURL != "" {
		imageURL := event.ImageURL
		resp.ImageURL = &imageURL
	}
	return resp
}

func toEventResponses(events []domain.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, toEventResponse(event))
	}
	return out
}

func toListingResponse(listing app.Listing) listingResponse {
	all := make([]eventAccessResponse, 0, len(listing.All))
	for _, a := range listing.All {
		all = append(all, eventAccessResponse{
			eventResponse: toEventResponse(a.Event),
			Accessible:    a.Accessible,
			Locked:        a.Locked(),
			LockedMessage: a.LockedMessage(),
		})
	}

	opts := tierOptionsResponse{
		Current:    string(listing.TierOptions.Current),
		CanAdvance: listing.TierOptions.CanAdvance,
		Next:       string(listing.TierOptions.Next),
		Choices:    make([]tierChoiceResponse, 0, len(listing.TierOptions.Choices)),
	}
	for _, c := range listing.TierOptions.Choices {
		opts.Choices = append(opts.Choices, tierChoiceResponse{Tier: string(c.Tier), Current: c.Current})
	}

	return listingResponse{
		ViewerID:      listing.Viewer.ID,
		Tier:          string(listing.Viewer.Tier),
		Available:     toEventResponses(listing.Available),
		All:           all,
		UpgradePrompt: listing.UpgradePrompt,
		TierOptions:   opts,
	}
}
