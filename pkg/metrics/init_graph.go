package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "lantern_graph_nodes_total",
			Help: "Total number of nodes in the loaded dependency graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "lantern_graph_edges_total",
			Help: "Total number of dependency edges in the loaded graph",
		},
	)

	r.GraphNodesByType = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "lantern_graph_nodes_by_type",
			Help: "Node count per task variant",
		},
		[]string{"type"},
	)

	r.GraphBuildsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lantern_graph_builds_total",
			Help: "Total number of graph builds from trace documents",
		},
		[]string{"status"},
	)

	r.GraphBuildDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lantern_graph_build_duration_seconds",
			Help:    "Graph build duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
	)
}
