// Package telemetry provides Prometheus instrumentation for the dispatcher
// and the HTTP API.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "recruitment"

// Registry wraps the Prometheus registry shared by all instruments.
type Registry struct {
	reg *prometheus.Registry
}

// NewRegistry creates a registry with the Go runtime and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return &Registry{reg: reg}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// RunCounts are the per-run totals reported by the dispatcher.
type RunCounts struct {
	TotalSearches int
	Processed     int
	EmailsSent    int
	HeartbeatSent int
	Suppressed    int
	Skipped       int
	Errors        int
}

// DispatchMetrics holds the instruments for dispatch runs.
type DispatchMetrics struct {
	runs        *prometheus.CounterVec
	runDuration prometheus.Histogram
	searches    *prometheus.CounterVec
	lastRun     prometheus.Gauge
}

// NewDispatchMetrics registers the dispatch instruments.
// If r is nil, it returns nil (no-op metrics).
func NewDispatchMetrics(r *Registry) (*DispatchMetrics, error) {
	if r == nil {
		return nil, nil
	}

	m := &DispatchMetrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "runs_total",
			Help:      "Dispatch runs by result.",
		}, []string{"result"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "run_duration_seconds",
			Help:      "Duration of dispatch runs in seconds.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 900},
		}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "searches_total",
			Help:      "Saved searches handled by dispatch runs, by outcome.",
		}, []string{"outcome"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last completed dispatch run.",
		}),
	}

	for _, c := range []prometheus.Collector{m.runs, m.runDuration, m.searches, m.lastRun} {
		if err := r.reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RecordRun records one completed run.
func (m *DispatchMetrics) RecordRun(counts RunCounts, took time.Duration, finishedAt time.Time) {
	if m == nil {
		return
	}

	m.runs.WithLabelValues("completed").Inc()
	m.runDuration.Observe(took.Seconds())
	m.lastRun.Set(float64(finishedAt.Unix()))

	m.searches.WithLabelValues("processed").Add(float64(counts.Processed))
	m.searches.WithLabelValues("email_sent").Add(float64(counts.EmailsSent))
	m.searches.WithLabelValues("heartbeat_sent").Add(float64(counts.HeartbeatSent))
	m.searches.WithLabelValues("suppressed").Add(float64(counts.Suppressed))
	m.searches.WithLabelValues("skipped").Add(float64(counts.Skipped))
	m.searches.WithLabelValues("error").Add(float64(counts.Errors))
}

// RecordFailedRun records a run that could not start.
func (m *DispatchMetrics) RecordFailedRun(took time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues("failed").Inc()
	m.runDuration.Observe(took.Seconds())
}
