package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Graph metrics
	GraphNodesTotal    prometheus.Gauge
	GraphEdgesTotal    prometheus.Gauge
	GraphNodesByType   *prometheus.GaugeVec
	GraphBuildsTotal   *prometheus.CounterVec
	GraphBuildDuration prometheus.Histogram

	// Analysis metrics
	AnalysisRunsTotal   *prometheus.CounterVec
	AnalysisDuration    *prometheus.HistogramVec
	CycleChecksTotal    *prometheus.CounterVec
	CloneOpsTotal       *prometheus.CounterVec
	TraversalNodesTotal prometheus.Counter

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initGraphMetrics()
	r.initAnalysisMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
