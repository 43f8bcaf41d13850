// Package metrics exports Prometheus collectors for search runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mtxik/AStarGrid/internal/astar"
)

// Search holds the collectors updated after every search.
type Search struct {
	runs       *prometheus.CounterVec
	expanded   *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
	pathLength prometheus.Histogram
	rejected   prometheus.Counter
}

// New registers the search collectors on reg. Pass prometheus.DefaultRegisterer
// to expose them on the default /metrics handler.
func New(reg prometheus.Registerer) *Search {
	f := promauto.With(reg)
	return &Search{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "astargrid_search_total",
			Help: "Completed searches by outcome and heuristic",
		}, []string{"outcome", "heuristic"}),

		expanded: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "astargrid_search_expanded_cells",
			Help:    "Cells popped from the frontier per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8), // 1 to ~16k
		}, []string{"heuristic"}),

		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "astargrid_search_duration_seconds",
			Help:    "Search wall time including step callbacks",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"heuristic"}),

		pathLength: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "astargrid_path_length",
			Help:    "Edges in found paths",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
		}),

		rejected: f.NewCounter(prometheus.CounterOpts{
			Name: "astargrid_search_rejected_total",
			Help: "Searches refused because of invalid arguments",
		}),
	}
}

// Observe records a finished search. A nil receiver is a no-op.
func (m *Search) Observe(heuristic string, res astar.Result) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(res.Outcome.String(), heuristic).Inc()
	m.expanded.WithLabelValues(heuristic).Observe(float64(res.Stats.Expanded))
	m.duration.WithLabelValues(heuristic).Observe(res.Stats.Elapsed.Seconds())
	if res.Outcome == astar.Found {
		m.pathLength.Observe(float64(len(res.Path)))
	}
}

// Rejected counts a search that failed its preconditions.
func (m *Search) Rejected() {
	if m == nil {
		return
	}
	m.rejected.Inc()
}
