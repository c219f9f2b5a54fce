package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/jayraj2301/Tier-Base-Showcase/internal/domain"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/metrics"
)

// TierChanger is the minimal interface needed for tier endpoints.
type TierChanger interface {
	AdvanceTier(ctx context.Context, viewer domain.Viewer) (domain.Tier, error)
	SetTier(ctx context.Context, viewer domain.Viewer, target domain.Tier) (domain.Tier, error)
}

const (
	tierActionAdvance = "advance"
	tierActionSet     = "set"
)

// HandleAdvanceTier moves the viewer one tier up and redirects to /events.
func HandleAdvanceTier(svc TierChanger, logger *log.Logger) http.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
		viewer, ok := ViewerFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		tier, err := svc.AdvanceTier(r.Context(), viewer)
		if err != nil {
			writeTierError(w, logger, tierActionAdvance, viewer, err)
			return
		}
		metrics.TierChangesTotal.WithLabelValues(tierActionAdvance, "ok").Inc()
		logger.Printf("tier changed action=%s viewer=%s from=%s to=%s", tierActionAdvance, viewer.ID, viewer.Tier, tier)
		http.Redirect(w, r, "/events", http.StatusSeeOther)
	}
}

// HandleSetTier jumps the viewer to the tier named by the "tier" form field.
func HandleSetTier(svc TierChanger, logger *log.Logger) http.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
		viewer, ok := ViewerFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		target, err := domain.ParseTier(r.PostFormValue("tier"))
		if err != nil {
			metrics.TierChangesTotal.WithLabelValues(tierActionSet, "rejected").Inc()
			writeError(w, http.StatusBadRequest, codeInvalidTier, err.Error())
			return
		}

		tier, err := svc.SetTier(r.Context(), viewer, target)
		if err != nil {
			writeTierError(w, logger, tierActionSet, viewer, err)
			return
		}
		metrics.TierChangesTotal.WithLabelValues(tierActionSet, "ok").Inc()
		logger.Printf("tier changed action=%s viewer=%s from=%s to=%s", tierActionSet, viewer.ID, viewer.Tier, tier)
		http.Redirect(w, r, "/events", http.StatusSeeOther)
	}
}

func writeTierError(w http.ResponseWriter, logger *log.Logger, action string, viewer domain.Viewer, err error) {
	switch {
	case errors.Is(err, domain.ErrTierAtMaximum):
		metrics.TierChangesTotal.WithLabelValues(action, "rejected").Inc()
		writeError(w, http.StatusConflict, codeTierAtMaximum, err.Error())
	case errors.Is(err, domain.ErrInvalidTier):
		metrics.TierChangesTotal.WithLabelValues(action, "rejected").Inc()
		writeError(w, http.StatusBadRequest, codeInvalidTier, err.Error())
	default:
		metrics.TierChangesTotal.WithLabelValues(action, "error").Inc()
		logger.Printf("ERROR: %s tier viewer=%s: %v", action, viewer.ID, err)
		writeError(w, http.StatusInternalServerError, codeInternalError, "Failed to update tier. Please try again.")
	}
}
