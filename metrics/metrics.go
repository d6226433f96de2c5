// Package metrics instruments spanforest algorithm runs with Prometheus.
//
// A Recorder implements prim_kruskal.Observer; pass it to Run with
// prim_kruskal.WithObserver. All series are labelled by strategy.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/spanforest/prim_kruskal"
)

// Namespace prefixes every metric name.
const Namespace = "spanforest"

// Recorder holds the collectors for one registry.
type Recorder struct {
	// 1. Runs Total (Counter)
	// Counts completed runs per strategy.
	RunsTotal *prometheus.CounterVec

	// 2. Run Duration (Histogram)
	// Wall time of a run, snapshot included.
	RunDuration *prometheus.HistogramVec

	// 3. Forest shape of the latest run (Gauges)
	ForestEdges      *prometheus.GaugeVec
	ForestWeight     *prometheus.GaugeVec
	ForestComponents *prometheus.GaugeVec
	GraphVertices    *prometheus.GaugeVec
}

// New creates a Recorder and registers its collectors with reg.
// A nil reg registers nothing, which is convenient in tests.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	labels := []string{"strategy"}

	return &Recorder{
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "runs_total",
				Help:      "Total number of spanning forest computations",
			},
			labels,
		),
		RunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "run_duration_seconds",
				Help:      "Duration of spanning forest computations in seconds",
				// From tiny fixtures (microseconds) to large random graphs (seconds).
				Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			labels,
		),
		ForestEdges: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "forest_edges",
				Help:      "Number of edges in the latest forest",
			},
			labels,
		),
		ForestWeight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "forest_weight",
				Help:      "Total weight of the latest forest",
			},
			labels,
		),
		ForestComponents: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "forest_components",
				Help:      "Number of trees (connected components) in the latest forest",
			},
			labels,
		),
		GraphVertices: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "graph_vertices",
				Help:      "Number of vertices in the graph of the latest run",
			},
			labels,
		),
	}
}

// ObserveRun implements prim_kruskal.Observer.
func (r *Recorder) ObserveRun(strategy prim_kruskal.Strategy, forest *prim_kruskal.Forest, elapsed time.Duration) {
	s := strategy.String()
	r.RunsTotal.WithLabelValues(s).Inc()
	r.RunDuration.WithLabelValues(s).Observe(elapsed.Seconds())
	if forest == nil {
		return
	}
	r.ForestEdges.WithLabelValues(s).Set(float64(forest.Len()))
	r.ForestWeight.WithLabelValues(s).Set(forest.TotalWeight)
	r.ForestComponents.WithLabelValues(s).Set(float64(forest.Components()))
	r.GraphVertices.WithLabelValues(s).Set(float64(forest.VertexCount))
}

var _ prim_kruskal.Observer = (*Recorder)(nil)
