package domain

// Viewer is the authenticated actor of a request. Tier is read from the
// identity provider on every request and never cached.
type Viewer struct {
	ID   string
	Tier Tier
}

// NewViewer builds a viewer from profile metadata. An empty tier means
// free. valid is false when rawTier was set to something unknown, in which
// case the viewer is also treated as free.
func NewViewer(id, rawTier string) (viewer Viewer, valid bool) {
	viewer = Viewer{ID: id, Tier: TierFree}
	if rawTier == "" {
		return viewer, true
	}
	tier, err := ParseTier(rawTier)
	if err != nil {
		return viewer, false
	}
	viewer.Tier = tier
	return viewer, true
}
