package http

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/jayraj2301/Tier-Base-Showcase/internal/app"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/domain"
	"github.com/jayraj2301/Tier-Base-Showcase/internal/metrics"
)

// CatalogResetter is the minimal interface needed for the seed endpoint.
type CatalogResetter interface {
	Reset(ctx context.Context) ([]domain.Event, error)
}

type seedResponse struct {
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Events  []eventResponse `json:"events"`
}

// HandleSeed wipes the event catalog and writes the sample dataset. When
// adminToken is non-empty the request must carry it as a bearer token.
func HandleSeed(svc CatalogResetter, adminToken string, logger *log.Logger) http.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
		if adminToken != "" && !validAdminToken(r, adminToken) {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
			return
		}

		events, err := svc.Reset(r.Context())
		if err != nil {
			metrics.CatalogResetsTotal.WithLabelValues("error").Inc()
			msg := "Internal server error"
			var resetErr *app.ResetError
			if errors.As(err, &resetErr) {
				switch resetErr.Step {
				case app.ResetStepClear:
					msg = "Failed to clear existing events"
				case app.ResetStepSeed:
					msg = "Failed to seed events"
				}
			}
			logger.Printf("ERROR: seed events: %v", err)
			writeError(w, http.StatusInternalServerError, codeInternalError, msg)
			return
		}

		metrics.CatalogResetsTotal.WithLabelValues("ok").Inc()
		logger.Printf("catalog reset count=%d", len(events))
		writeJSON(w, http.StatusOK, seedResponse{
			Message: "Events seeded successfully",
			Count:   len(events),
			Events:  toEventResponses(events),
		})
	}
}

func validAdminToken(r *http.Request, want string) bool {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return false
	}
	got := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
