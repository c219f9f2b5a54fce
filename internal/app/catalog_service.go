package app

import (
	"context"
	"fmt"

	"github.com/jayraj2301/Tier-Base-Showcase/internal/clock"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/domain"
)

// CatalogRepository is the event store surface used by the reset flow.
type CatalogRepository interface {
	DeleteAllEvents(ctx context.Context) (int64, error)
	InsertEvents(ctx context.Context, events []domain.Event) ([]domain.Event, error)
}

// ResetError marks which step of a catalog reset failed.
type ResetError struct {
	Step string
	Err  error
}

func (e *ResetError) Error() string {
	return fmt.Sprintf("reset catalog: %s: %v", e.Step, e.Err)
}

func (e *ResetError) Unwrap() error {
	return e.Err
}

const (
	ResetStepClear = "clear"
	ResetStepSeed  = "seed"
)

type CatalogService struct {
	repo   CatalogRepository
	clock  clock.Clock
	sample []domain.Event
}

func NewCatalogService(repo CatalogRepository, clk clock.Clock, sample []domain.Event) *CatalogService {
	return &CatalogService{
		repo:   repo,
		clock:  clk,
		sample: sample,
	}
}

// Reset replaces the whole catalog with the sample dataset. The delete and
// the insert are separate store calls: if the insert fails the catalog is
// left empty.
func (s *CatalogService) Reset(ctx context.Context) ([]domain.Event, error) {
	if _, err := s.repo.DeleteAllEvents(ctx); err != nil {
		return nil, &ResetError{Step: ResetStepClear, Err: err}
	}

	now := s.clock.Now()
	events := make([]domain.Event, 0, len(s.sample))
	for _, e := range s.sample {
		if !e.Tier.Valid() {
			return nil, &ResetError{Step: ResetStepSeed, Err: domain.ErrInvalidTier}
		}
		e.ID = newUUID()
		e.CreatedAt = now
		events = append(events, e)
	}

	inserted, err := s.repo.InsertEvents(ctx, events)
	if err != nil {
		return nil, &ResetError{Step: ResetStepSeed, Err: err}
	}
	return inserted, nil
}
