package domain

import "strings"

// Tier is a membership level gating which events a viewer can see.
type Tier string

const (
	TierFree     Tier = "free"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// tierOrder is ascending by access level; index is rank.
var tierOrder = []Tier{TierFree, TierSilver, TierGold, TierPlatinum}

// Tiers returns the canonical tier order, lowest first.
func Tiers() []Tier {
	out := make([]Tier, len(tierOrder))
	copy(out, tierOrder)
	return out
}

// ParseTier converts a raw value into a Tier.
func ParseTier(raw string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", ErrInvalidTier
	}
	return t, nil
}

// Rank returns the position of t in the canonical order.
func Rank(t Tier) (int, error) {
	for i, candidate := range tierOrder {
		if candidate == t {
			return i, nil
		}
	}
	return -1, ErrInvalidTier
}

// AccessibleTiers returns every tier at or below viewer.
func AccessibleTiers(viewer Tier) ([]Tier, error) {
	rank, err := Rank(viewer)
	if err != nil {
		return nil, err
	}
	out := make([]Tier, rank+1)
	copy(out, tierOrder[:rank+1])
	return out, nil
}

// NextTier returns the tier one rank above t. ok is false at the top.
func NextTier(t Tier) (Tier, bool) {
	rank, err := Rank(t)
	if err != nil || rank+1 >= len(tierOrder) {
		return "", false
	}
	return tierOrder[rank+1], true
}

func (t Tier) Valid() bool {
	_, err := Rank(t)
	return err == nil
}

// Label is the display form, e.g. "Gold".
func (t Tier) Label() string {
	if t == "" {
		return ""
	}
	s := string(t)
	return strings.ToUpper(s[:1]) + s[1:]
}

func (t Tier) String() string {
	return string(t)
}
