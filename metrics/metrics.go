// Package metrics exports search statistics to Prometheus.
//
// A Recorder owns its registry, so several recorders (one per test, one per
// bench run) never collide on metric names. It implements search.Observer and
// is installed with search.WithObserver.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/pathbench/search"
)

const namespace = "pathbench"

// Query outcome label values.
const (
	StatusFound  = "found"
	StatusNoPath = "no_path"
	StatusError  = "error"
)

// Recorder collects query and preprocessing metrics.
type Recorder struct {
	reg *prometheus.Registry

	// queries counts queries by mode and outcome.
	// Labels: mode (dijkstra, astar, alt, weighted-*), status (found, no_path, error)
	queries *prometheus.CounterVec

	// latency measures search time of successful queries.
	// Labels: mode
	latency *prometheus.HistogramVec

	// settled tracks vertices settled per successful query.
	// Labels: mode
	settled *prometheus.HistogramVec

	// relaxations tracks edges examined per successful query.
	// Labels: mode
	relaxations *prometheus.HistogramVec

	preprocess prometheus.Histogram
	landmarks  prometheus.Gauge
}

var _ search.Observer = (*Recorder)(nil)

// NewRecorder registers all metrics on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		reg: reg,
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "queries_total",
			Help:      "Shortest-path queries by mode and outcome",
		}, []string{"mode", "status"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Search time per query in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"mode"}),
		settled: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "settled_vertices",
			Help:      "Vertices settled per query",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"mode"}),
		relaxations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "relaxations",
			Help:      "Edges examined per query",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"mode"}),
		preprocess: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "landmark",
			Name:      "preprocess_seconds",
			Help:      "Landmark selection and table construction time in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-3, 4, 10),
		}),
		landmarks: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "landmark",
			Name:      "count",
			Help:      "Landmarks in the most recently built table",
		}),
	}
}

// ObservePreprocess records one landmark table build.
func (r *Recorder) ObservePreprocess(landmarks int, elapsed time.Duration) {
	r.preprocess.Observe(elapsed.Seconds())
	r.landmarks.Set(float64(landmarks))
}

// ObserveQuery records one query outcome.
func (r *Recorder) ObserveQuery(mode string, res *search.Result, err error) {
	if err != nil {
		r.queries.WithLabelValues(mode, StatusError).Inc()
		return
	}
	status := StatusFound
	if !res.Found {
		status = StatusNoPath
	}
	r.queries.WithLabelValues(mode, status).Inc()
	r.latency.WithLabelValues(mode).Observe(res.Elapsed.Seconds())
	r.settled.WithLabelValues(mode).Observe(float64(res.Settled))
	r.relaxations.WithLabelValues(mode).Observe(float64(res.Relaxations))
}

// Registry returns the registry holding the recorder's metrics.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
