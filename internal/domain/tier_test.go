package domain

import (
	"errors"
	"testing"
)

func TestRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tier Tier
		want int
	}{
		{TierFree, 0},
		{TierSilver, 1},
		{TierGold, 2},
		{TierPlatinum, 3},
	}
	for _, tc := range tests {
		got, err := Rank(tc.tier)
		if err != nil {
			t.Fatalf("rank %s: %v", tc.tier, err)
		}
		if got != tc.want {
			t.Fatalf("rank %s: expected %d, got %d", tc.tier, tc.want, got)
		}
	}

	if _, err := Rank("diamond"); !errors.Is(err, ErrInvalidTier) {
		t.Fatalf("expected ErrInvalidTier, got %v", err)
	}
}

func TestAccessibleTiers_IsPrefixOfOrder(t *testing.T) {
	t.Parallel()

	order := Tiers()
	for _, viewer := range order {
		got, err := AccessibleTiers(viewer)
		if err != nil {
			t.Fatalf("accessible tiers %s: %v", viewer, err)
		}
		rank, _ := Rank(viewer)
		if len(got) != rank+1 {
			t.Fatalf("%s: expected %d tiers, got %d", viewer, rank+1, len(got))
		}
		for i := range got {
			if got[i] != order[i] {
				t.Fatalf("%s: expected prefix %v, got %v", viewer, order[:rank+1], got)
			}
		}
	}

	if _, err := AccessibleTiers(""); !errors.Is(err, ErrInvalidTier) {
		t.Fatalf("expected ErrInvalidTier, got %v", err)
	}
}

func TestAccessibleTiers_DoesNotAliasOrder(t *testing.T) {
	t.Parallel()

	got, err := AccessibleTiers(TierPlatinum)
	if err != nil {
		t.Fatalf("accessible tiers: %v", err)
	}
	got[0] = "mutated"
	if Tiers()[0] != TierFree {
		t.Fatalf("canonical order was mutated")
	}
}

func TestNextTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tier   Tier
		want   Tier
		wantOK bool
	}{
		{TierFree, TierSilver, true},
		{TierSilver, TierGold, true},
		{TierGold, TierPlatinum, true},
		{TierPlatinum, "", false},
		{"unknown", "", false},
	}
	for _, tc := range tests {
		got, ok := NextTier(tc.tier)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("next tier %q: expected (%q, %v), got (%q, %v)", tc.tier, tc.want, tc.wantOK, got, ok)
		}
	}
}

func TestParseTier(t *testing.T) {
	t.Parallel()

	got, err := ParseTier(" Gold ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != TierGold {
		t.Fatalf("expected gold, got %q", got)
	}

	for _, raw := range []string{"", "bronze", "platinum+"} {
		if _, err := ParseTier(raw); !errors.Is(err, ErrInvalidTier) {
			t.Fatalf("parse %q: expected ErrInvalidTier, got %v", raw, err)
		}
	}
}

func TestTierLabel(t *testing.T) {
	t.Parallel()

	if got := TierPlatinum.Label(); got != "Platinum" {
		t.Fatalf("expected Platinum, got %q", got)
	}
	if got := Tier("").Label(); got != "" {
		t.Fatalf("expected empty label, got %q", got)
	}
}
