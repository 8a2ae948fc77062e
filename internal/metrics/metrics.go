// Package metrics exposes dependency validation runs as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/giantswarm/wirecheck/internal/validation"
)

const namespace = "wirecheck"

// Outcome label values of the runs counter.
const (
	OutcomePassed  = "passed"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
)

// Recorder implements validation.Observer. It owns its registry so tests and
// several recorders in one process do not collide.
type Recorder struct {
	registry *prometheus.Registry

	runs     *prometheus.CounterVec
	cycles   prometheus.Gauge
	services prometheus.Gauge
	edges    prometheus.Gauge
	excluded prometheus.Gauge
	duration prometheus.Histogram
	lastRun  prometheus.Gauge
}

var _ validation.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder with Go runtime and process collectors
// registered next to the validation metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "validation",
			Name:      "runs_total",
			Help:      "Dependency validation runs by outcome.",
		}, []string{"outcome"}),
		cycles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "validation",
			Name:      "cycles",
			Help:      "Unique dependency cycles found by the last run.",
		}),
		services: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "validation",
			Name:      "services",
			Help:      "Services in the dependency graph of the last run.",
		}),
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "validation",
			Name:      "edges",
			Help:      "Dependency edges in the graph of the last run.",
		}),
		excluded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "validation",
			Name:      "excluded_registrations",
			Help:      "Registrations the last run could not validate, e.g. factories.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "validation",
			Name:      "duration_seconds",
			Help:      "Time spent validating dependencies.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "validation",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last run.",
		}),
	}

	r.registry.MustRegister(
		r.runs, r.cycles, r.services, r.edges, r.excluded, r.duration, r.lastRun,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveValidation records one run.
func (r *Recorder) ObserveValidation(res validation.Result) {
	outcome := OutcomePassed
	switch {
	case res.Skipped:
		outcome = OutcomeSkipped
	case !res.Passed():
		outcome = OutcomeFailed
	}

	r.runs.WithLabelValues(outcome).Inc()
	r.cycles.Set(float64(len(res.Cycles)))
	r.services.Set(float64(res.Nodes))
	r.edges.Set(float64(res.Edges))
	r.excluded.Set(float64(len(res.Excluded)))
	r.duration.Observe(res.Duration.Seconds())
	r.lastRun.SetToCurrentTime()
}

// Registry returns the registry the metrics are registered in.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
