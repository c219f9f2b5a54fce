package app

import (
	"context"
	"fmt"

	"github.com/jayraj2301/Tier-Base-Showcase/internal/domain"
)

// EventReader is the read side of the event store.
type EventReader interface {
	ListEventsByTiers(ctx context.Context, tiers []domain.Tier) ([]domain.Event, error)
	ListAllEvents(ctx context.Context) ([]domain.Event, error)
}

// Listing is everything the events page shows for one viewer.
type Listing struct {
	Viewer        domain.Viewer
	Available     []domain.Event
	All           []domain.EventAccess
	UpgradePrompt bool
	TierOptions   TierOptions
}

type ListingService struct {
	repo EventReader
}

func NewListingService(repo EventReader) *ListingService {
	return &ListingService{repo: repo}
}

// ListForViewer loads the events visible at the viewer's tier plus the full
// catalog with locked entries flagged.
func (s *ListingService) ListForViewer(ctx context.Context, viewer domain.Viewer) (Listing, error) {
	tiers, err := domain.AccessibleTiers(viewer.Tier)
	if err != nil {
		return Listing{}, err
	}

	fetched, err := s.repo.ListEventsByTiers(ctx, tiers)
	if err != nil {
		return Listing{}, fmt.Errorf("list accessible events: %w", err)
	}
	available, err := domain.FilterAccessible(fetched, viewer.Tier)
	if err != nil {
		return Listing{}, err
	}

	all, err := s.repo.ListAllEvents(ctx)
	if err != nil {
		return Listing{}, fmt.Errorf("list all events: %w", err)
	}
	annotated, err := domain.AnnotateAccess(all, viewer.Tier)
	if err != nil {
		return Listing{}, err
	}

	return Listing{
		Viewer:        viewer,
		Available:     available,
		All:           annotated,
		UpgradePrompt: domain.NeedsUpgradePrompt(available),
		TierOptions:   OptionsFor(viewer),
	}, nil
}
