package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysisRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lantern_analysis_runs_total",
			Help: "Total number of analysis runs",
		},
		[]string{"kind", "status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lantern_analysis_duration_seconds",
			Help:    "Analysis run duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"kind"},
	)

	r.CycleChecksTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lantern_cycle_checks_total",
			Help: "Total number of cycle checks by result",
		},
		[]string{"result"},
	)

	r.CloneOpsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lantern_clone_operations_total",
			Help: "Total number of subgraph clone operations",
		},
		[]string{"status"},
	)

	r.TraversalNodesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "lantern_traversal_nodes_total",
			Help: "Total number of nodes visited across traversals",
		},
	)
}
