package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RecordGraphBuild records a graph build with its size and duration
func (r *Registry) RecordGraphBuild(status string, nodes, edges int, duration time.Duration) {
	r.GraphBuildsTotal.WithLabelValues(status).Inc()
	r.GraphBuildDuration.Observe(duration.Seconds())
	if status == "success" {
		r.GraphNodesTotal.Set(float64(nodes))
		r.GraphEdgesTotal.Set(float64(edges))
	}
}

// SetNodesByType sets the per-variant node count gauge
func (r *Registry) SetNodesByType(nodeType string, count int) {
	r.GraphNodesByType.WithLabelValues(nodeType).Set(float64(count))
}

// RecordAnalysis records an analysis run
func (r *Registry) RecordAnalysis(kind, status string, duration time.Duration) {
	r.AnalysisRunsTotal.WithLabelValues(kind, status).Inc()
	r.AnalysisDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordCycleCheck records a cycle check result ("cyclic" or "acyclic")
func (r *Registry) RecordCycleCheck(result string) {
	r.CycleChecksTotal.WithLabelValues(result).Inc()
}

// RecordClone records a subgraph clone operation
func (r *Registry) RecordClone(status string) {
	r.CloneOpsTotal.WithLabelValues(status).Inc()
}

// AddTraversedNodes adds to the cumulative traversal visit counter
func (r *Registry) AddTraversedNodes(n int) {
	r.TraversalNodesTotal.Add(float64(n))
}

// Handler returns an http.Handler exposing the registry in Prometheus format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
