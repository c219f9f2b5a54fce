package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)

	TierChangesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tier_changes_total",
			Help: "Tier change requests by action (advance, set) and outcome",
		},
		[]string{"action", "outcome"},
	)

	CatalogResetsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_resets_total",
			Help: "Catalog reset attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// Register adds all collectors to reg.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		TierChangesTotal,
		CatalogResetsTotal,
	)
}
