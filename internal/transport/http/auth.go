package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/jayraj2301/Tier-Base-Showcase/internal/domain"
)

const sessionCookieName = "__session"

// ViewerAuthenticator resolves a session token into the current viewer.
type ViewerAuthenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Viewer, error)
}

type viewerKey struct{}

// ViewerFromContext returns the viewer stored by RequireViewer.
func ViewerFromContext(ctx context.Context) (domain.Viewer, bool) {
	viewer, ok := ctx.Value(viewerKey{}).(domain.Viewer)
	return viewer, ok
}

func withViewer(ctx context.Context, viewer domain.Viewer) context.Context {
	return context.WithValue(ctx, viewerKey{}, viewer)
}

func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

func isUnauthenticated(err error) bool {
	return errors.Is(err, domain.ErrUnauthenticated) || errors.Is(err, domain.ErrViewerNotFound)
}

// RequireViewer sends anonymous requests back to the landing page.
func RequireViewer(auth ViewerAuthenticator, logger *log.Logger, next http.Handler) http.Handler {
	return requireViewer(auth, logger, next, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})
}

// RequireViewerJSON answers anonymous requests with a JSON 401.
func RequireViewerJSON(auth ViewerAuthenticator, logger *log.Logger, next http.Handler) http.Handler {
	return requireViewer(auth, logger, next, func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "not authenticated")
	})
}

func requireViewer(auth ViewerAuthenticator, logger *log.Logger, next http.Handler, reject http.HandlerFunc) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)
		if token == "" {
			reject(w, r)
			return
		}
		viewer, err := auth.Authenticate(r.Context(), token)
		if err != nil {
			if isUnauthenticated(err) {
				reject(w, r)
				return
			}
			logger.Printf("ERROR: authenticate viewer: %v", err)
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		next.ServeHTTP(w, r.WithContext(withViewer(r.Context(), viewer)))
	})
}
