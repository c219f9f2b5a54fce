package domain

import (
	"fmt"
	"sort"
)

// EventAccess is an event annotated with whether a viewer may open it.
type EventAccess struct {
	Event      Event
	Accessible bool
}

// Locked reports whether the viewer must upgrade to open the event.
func (a EventAccess) Locked() bool {
	return !a.Accessible
}

// LockedMessage is empty for accessible events.
func (a EventAccess) LockedMessage() string {
	if !a.Locked() {
		return ""
	}
	return fmt.Sprintf("Upgrade to %s to access this event", a.Event.Tier.Label())
}

// CanAccess reports whether a viewer at tier viewer may see event.
func CanAccess(event Event, viewer Tier) (bool, error) {
	viewerRank, err := Rank(viewer)
	if err != nil {
		return false, err
	}
	eventRank, err := Rank(event.Tier)
	if err != nil {
		return false, fmt.Errorf("event %s: %w", event.ID, err)
	}
	return eventRank <= viewerRank, nil
}

// FilterAccessible returns the events viewer may see, by event date.
func FilterAccessible(events []Event, viewer Tier) ([]Event, error) {
	if _, err := Rank(viewer); err != nil {
		return nil, err
	}
	out := make([]Event, 0, len(events))
	for _, event := range events {
		ok, err := CanAccess(event, viewer)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, event)
		}
	}
	SortEvents(out)
	return out, nil
}

// AnnotateAccess returns every event, by event date, flagged for viewer.
func AnnotateAccess(events []Event, viewer Tier) ([]EventAccess, error) {
	if _, err := Rank(viewer); err != nil {
		return nil, err
	}
	sorted := make([]Event, len(events))
	copy(sorted, events)
	SortEvents(sorted)

	out := make([]EventAccess, 0, len(sorted))
	for _, event := range sorted {
		ok, err := CanAccess(event, viewer)
		if err != nil {
			return nil, err
		}
		out = append(out, EventAccess{Event: event, Accessible: ok})
	}
	return out, nil
}

// NeedsUpgradePrompt is true when nothing is visible at the viewer's tier.
func NeedsUpgradePrompt(accessible []Event) bool {
	return len(accessible) == 0
}

// SortEvents orders by event date ascending, then by id.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.EventDate.Equal(b.EventDate) {
			return a.EventDate.Before(b.EventDate)
		}
		return a.ID < b.ID
	})
}
