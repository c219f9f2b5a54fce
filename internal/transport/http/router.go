package http

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// RouterDeps wires the services behind the HTTP surface.
type RouterDeps struct {
	Auth    ViewerAuthenticator
	Listing EventLister
	Tiers   TierChanger
	Catalog CatalogResetter
	// DB backs /ready when set.
	DB         Pinger
	AdminToken string
	Pages      PageOptions
	// Metrics is mounted on /metrics when set.
	Metrics http.Handler
	Logger  *log.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}

	r := mux.NewRouter()
	r.NotFoundHandler = NotFoundHandler()
	r.MethodNotAllowedHandler = MethodNotAllowedHandler()

	r.HandleFunc("/health", HealthHandler).Methods(http.MethodGet)
	if deps.DB != nil {
		r.Handle("/ready", ReadyHandler(deps.DB)).Methods(http.MethodGet)
	}
	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics).Methods(http.MethodGet)
	}
	r.Handle("/placeholder-event.svg", PlaceholderHandler()).Methods(http.MethodGet)

	r.Handle("/", Instrument("home",
		HandleHome(deps.Auth, deps.Pages, logger))).Methods(http.MethodGet)
	r.Handle("/events", Instrument("events_page",
		RequireViewer(deps.Auth, logger, HandleEventsPage(deps.Listing, deps.Pages, logger)))).Methods(http.MethodGet)
	r.Handle("/api/events", Instrument("events_api",
		RequireViewerJSON(deps.Auth, logger, HandleListEvents(deps.Listing, logger)))).Methods(http.MethodGet)
	r.Handle("/tier/advance", Instrument("tier_advance",
		RequireViewer(deps.Auth, logger, HandleAdvanceTier(deps.Tiers, logger)))).Methods(http.MethodPost)
	r.Handle("/tier/set", Instrument("tier_set",
		RequireViewer(deps.Auth, logger, HandleSetTier(deps.Tiers, logger)))).Methods(http.MethodPost)
	r.Handle("/api/seed", Instrument("seed",
		HandleSeed(deps.Catalog, deps.AdminToken, logger))).Methods(http.MethodPost)

	return r
}
