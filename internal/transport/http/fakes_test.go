package http

import (
	"context"

	"github.com/jayraj2301/Tier-Base-Showcase/internal/app"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/domain"
)

type fakeAuthenticator struct {
	viewers map[string]domain.Viewer
	err     error
}

func (f *fakeAuthenticator) Authenticate(ctx context.Context, token string) (domain.Viewer, error) {
	if f.err != nil {
		return domain.Viewer{}, f.err
	}
	viewer, ok := f.viewers[token]
	if !ok {
		return domain.Viewer{}, domain.ErrUnauthenticated
	}
	return viewer, nil
}

type fakeLister struct {
	events []domain.Event
	err    error
}

func (f *fakeLister) ListForViewer(ctx context.Context, viewer domain.Viewer) (app.Listing, error) {
	if f.err != nil {
		return app.Listing{}, f.err
	}
	available, err := domain.FilterAccessible(f.events, viewer.Tier)
	if err != nil {
		return app.Listing{}, err
	}
	all, err := domain.AnnotateAccess(f.events, viewer.Tier)
	if err != nil {
		return app.Listing{}, err
	}
	return app.Listing{
		Viewer:        viewer,
		Available:     available,
		All:           all,
		UpgradePrompt: domain.NeedsUpgradePrompt(available),
		TierOptions:   app.OptionsFor(viewer),
	}, nil
}

type fakeTierChanger struct {
	err     error
	targets []domain.Tier
}

func (f *fakeTierChanger) AdvanceTier(ctx context.Context, viewer domain.Viewer) (domain.Tier, error) {
	if f.err != nil {
		return viewer.Tier, f.err
	}
	next, ok := domain.NextTier(viewer.Tier)
	if !ok {
		return viewer.Tier, domain.ErrTierAtMaximum
	}
	f.targets = append(f.targets, next)
	return next, nil
}

func (f *fakeTierChanger) SetTier(ctx context.Context, viewer domain.Viewer, target domain.Tier) (domain.Tier, error) {
	if f.err != nil {
		return viewer.Tier, f.err
	}
	f.targets = append(f.targets, target)
	return target, nil
}

type fakeResetter struct {
	events []domain.Event
	err    error
	calls  int
}

func (f *fakeResetter) Reset(ctx context.Context) ([]domain.Event, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}
