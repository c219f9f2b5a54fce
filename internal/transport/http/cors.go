package http

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	corsAllowMethods = "GET, POST"
	corsAllowHeaders = "Content-Type, Authorization"
	corsMaxAge       = 10 * 60
)

// corsPolicy decides which browser origins may call the service. Viewers
// authenticate with the __session cookie, so only origins named explicitly
// are allowed to send credentials; "*" opens anonymous reads only.
type corsPolicy struct {
	anyOrigin bool
	named     map[string]struct{}
}

func newCORSPolicy(origins []string) corsPolicy {
	p := corsPolicy{named: make(map[string]struct{}, len(origins))}
	for _, origin := range origins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		switch origin {
		case "":
		case "*":
			p.anyOrigin = true
		default:
			p.named[origin] = struct{}{}
		}
	}
	return p
}

// credentialed reports whether origin may send the session cookie.
func (p corsPolicy) credentialed(origin string) bool {
	_, ok := p.named[origin]
	return ok
}

func (p corsPolicy) allows(origin string) bool {
	return p.anyOrigin || p.credentialed(origin)
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}

// CORS applies the origin allow-list. Named origins are echoed back with
// credentials so cookie sessions work cross-origin; a wildcard entry answers
// with "*" and never with credentials. Preflights from unknown origins are
// refused outright.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	policy := newCORSPolicy(allowedOrigins)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		h := w.Header()
		h.Add("Vary", "Origin")
		if !policy.allows(origin) {
			if isPreflight(r) {
				writeError(w, http.StatusForbidden, codeForbidden, "origin not allowed")
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		if policy.credentialed(origin) {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
		} else {
			h.Set("Access-Control-Allow-Origin", "*")
		}

		if isPreflight(r) {
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Max-Age", strconv.Itoa(corsMaxAge))
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
