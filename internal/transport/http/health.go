package http

import (
	"context"
	stdhttp "net/http"
	"time"
)

// Pinger checks that the event store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports basic liveness for the service.
func HealthHandler(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	writeText(w, stdhttp.StatusOK, "ok")
}

// ReadyHandler reports whether the event store answers a ping.
func ReadyHandler(db Pinger) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			writeText(w, stdhttp.StatusServiceUnavailable, "not ready")
			return
		}
		writeText(w, stdhttp.StatusOK, "ready")
	}
}

func writeText(w stdhttp.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
