package http

import (
	"log"
	"net/http"
)

// HandleListEvents returns the viewer's listing as JSON. Expects
// RequireViewerJSON upstream.
func HandleListEvents(svc EventLister, logger *log.Logger) http.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
		viewer, ok := ViewerFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "not authenticated")
			return
		}
		listing, err := svc.ListForViewer(r.Context(), viewer)
		if err != nil {
			logger.Printf("ERROR: list events viewer=%s: %v", viewer.ID, err)
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, toListingResponse(listing))
	}
}
