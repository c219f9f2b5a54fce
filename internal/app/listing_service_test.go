package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jayraj2301/Tier-Base-Showcase/internal/domain"
)

type fakeEventReader struct {
	events []domain.Event

	requestedTiers []domain.Tier
	byTiersErr     error
	allErr         error
}

func (f *fakeEventReader) ListEventsByTiers(ctx context.Context, tiers []domain.Tier) ([]domain.Event, error) {
	f.requestedTiers = tiers
	if f.byTiersErr != nil {
		return nil, f.byTiersErr
	}
	allowed := make(map[domain.Tier]bool, len(tiers))
	for _, tier := range tiers {
		allowed[tier] = true
	}
	var out []domain.Event
	for _, e := range f.events {
		if allowed[e.Tier] {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventReader) ListAllEvents(ctx context.Context) ([]domain.Event, error) {
	if f.allErr != nil {
		return nil, f.allErr
	}
	return f.events, nil
}

func scenarioEvents() []domain.Event {
	d1 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	return []domain.Event{
		{ID: "1", Title: "Free", Tier: domain.TierFree, EventDate: d1},
		{ID: "2", Title: "Gold", Tier: domain.TierGold, EventDate: d1.Add(time.Hour)},
		{ID: "3", Title: "Silver", Tier: domain.TierSilver, EventDate: d1.Add(2 * time.Hour)},
	}
}

func TestListingService_SilverViewer(t *testing.T) {
	repo := &fakeEventReader{events: scenarioEvents()}
	svc := NewListingService(repo)

	listing, err := svc.ListForViewer(context.Background(), domain.Viewer{ID: "u1", Tier: domain.TierSilver})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(repo.requestedTiers) != 2 {
		t.Fatalf("expected store queried with 2 tiers, got %v", repo.requestedTiers)
	}
	if len(listing.Available) != 2 || listing.Available[0].Title != "Free" || listing.Available[1].Title != "Silver" {
		t.Fatalf("unexpected available events: %+v", listing.Available)
	}
	if len(listing.All) != 3 {
		t.Fatalf("expected 3 events in full listing, got %d", len(listing.All))
	}
	if listing.All[1].Event.Title != "Gold" || listing.All[1].Accessible {
		t.Fatalf("expected gold to be locked: %+v", listing.All[1])
	}
	if listing.UpgradePrompt {
		t.Fatalf("expected no upgrade prompt")
	}
	if !listing.TierOptions.CanAdvance || listing.TierOptions.Next != domain.TierGold {
		t.Fatalf("unexpected tier options: %+v", listing.TierOptions)
	}
}

func TestListingService_EmptyCatalogPromptsUpgrade(t *testing.T) {
	svc := NewListingService(&fakeEventReader{})

	listing, err := svc.ListForViewer(context.Background(), domain.Viewer{ID: "u1", Tier: domain.TierFree})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !listing.UpgradePrompt {
		t.Fatalf("expected upgrade prompt")
	}
}

func TestListingService_PropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("store unavailable")
	viewer := domain.Viewer{ID: "u1", Tier: domain.TierGold}

	_, err := NewListingService(&fakeEventReader{byTiersErr: storeErr}).ListForViewer(context.Background(), viewer)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}

	_, err = NewListingService(&fakeEventReader{allErr: storeErr}).ListForViewer(context.Background(), viewer)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestListingService_InvalidViewerTier(t *testing.T) {
	_, err := NewListingService(&fakeEventReader{}).ListForViewer(context.Background(), domain.Viewer{ID: "u1", Tier: "diamond"})
	if !errors.Is(err, domain.ErrInvalidTier) {
		t.Fatalf("expected ErrInvalidTier, got %v", err)
	}
}
