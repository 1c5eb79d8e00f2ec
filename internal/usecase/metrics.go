package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics
var (
	routeDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_route_decisions_total",
			Help: "Dashboard route decisions by kind and target",
		},
		[]string{"kind", "target"},
	)

	guardDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_guard_decisions_total",
			Help: "Access guard decisions by kind",
		},
		[]string{"kind"},
	)

	subscriptionLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscription_lookups_total",
			Help: "Subscription lookups by source (cache, db, missing, error)",
		},
		[]string{"source"},
	)

	profileSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profile_saves_total",
			Help: "Profile saves by outcome",
		},
		[]string{"status"},
	)

	profileSaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "profile_save_duration_seconds",
			Help:    "Duration of profile saves",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2},
		},
	)

	profileCompletion = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "profile_completion_percent",
			Help:    "Completion percentage of saved profiles",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
)

// targetLabel keeps the label set bounded to the dashboard bases.
func targetLabel(path, reason string) string {
	if path != "" {
		return path
	}
	return reason
}
