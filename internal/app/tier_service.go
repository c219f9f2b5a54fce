package app

import (
	"context"
	"fmt"

	"github.com/jayraj2301/Tier-Base-Showcase/internal/domain"
)

// ProfileStore writes the viewer tier to the identity provider.
type ProfileStore interface {
	UpdateTier(ctx context.Context, viewerID string, tier domain.Tier) error
}

// TierChoice is one entry of the change-tier menu.
type TierChoice struct {
	Tier    domain.Tier
	Current bool
}

// TierOptions describes the tier actions offered to a viewer.
type TierOptions struct {
	Current    domain.Tier
	CanAdvance bool
	Next       domain.Tier
	Choices    []TierChoice
}

// OptionsFor computes the upgrade button and the change menu. The menu
// always lists all four tiers.
func OptionsFor(viewer domain.Viewer) TierOptions {
	next, ok := domain.NextTier(viewer.Tier)
	opts := TierOptions{
		Current:    viewer.Tier,
		CanAdvance: ok,
		Next:       next,
	}
	for _, tier := range domain.Tiers() {
		opts.Choices = append(opts.Choices, TierChoice{Tier: tier, Current: tier == viewer.Tier})
	}
	return opts
}

type TierService struct {
	profiles ProfileStore
}

func NewTierService(profiles ProfileStore) *TierService {
	return &TierService{profiles: profiles}
}

// AdvanceTier moves the viewer one rank up.
func (s *TierService) AdvanceTier(ctx context.Context, viewer domain.Viewer) (domain.Tier, error) {
	if !viewer.Tier.Valid() {
		return "", domain.ErrInvalidTier
	}
	next, ok := domain.NextTier(viewer.Tier)
	if !ok {
		return viewer.Tier, domain.ErrTierAtMaximum
	}
	if err := s.profiles.UpdateTier(ctx, viewer.ID, next); err != nil {
		return viewer.Tier, fmt.Errorf("advance tier: %w", err)
	}
	return next, nil
}

// SetTier jumps to any tier, downgrades included. Choosing the current tier
// does nothing.
func (s *TierService) SetTier(ctx context.Context, viewer domain.Viewer, target domain.Tier) (domain.Tier, error) {
	if !target.Valid() {
		return viewer.Tier, domain.ErrInvalidTier
	}
	if target == viewer.Tier {
		return target, nil
	}
	if err := s.profiles.UpdateTier(ctx, viewer.ID, target); err != nil {
		return viewer.Tier, fmt.Errorf("set tier: %w", err)
	}
	return target, nil
}
