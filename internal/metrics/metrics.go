// Package metrics exposes Prometheus instrumentation for the pipeline
// engine. Collectors are registered on a dedicated registry so tests can
// create isolated instances.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles all engine collectors.
type Metrics struct {
	registry *prometheus.Registry

	// SnapshotWriteFailures counts swallowed snapshot insert errors. Each
	// increment is one lost generation of diff history.
	SnapshotWriteFailures prometheus.Counter

	// ProviderAttempts counts adapter attempts by provider and status.
	ProviderAttempts *prometheus.CounterVec

	// RunsCompleted counts pipeline runs by terminal status.
	RunsCompleted *prometheus.CounterVec

	// VersionConflicts counts optimistic-concurrency losers by entity type.
	VersionConflicts *prometheus.CounterVec

	// StepDuration observes step execution latency by operation family.
	StepDuration *prometheus.HistogramVec

	// FanOutChildren observes children spawned per fan-out step.
	FanOutChildren prometheus.Histogram
}

// New creates a Metrics bundle backed by its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector())

	m := &Metrics{
		registry: reg,
		SnapshotWriteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "waterline",
			Name:      "snapshot_write_failures_total",
			Help:      "Entity snapshot inserts that failed and were swallowed.",
		}),
		ProviderAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "waterline",
			Name:      "provider_attempts_total",
			Help:      "Provider attempts by provider name and attempt status.",
		}, []string{"provider", "status"}),
		RunsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "waterline",
			Name:      "pipeline_runs_completed_total",
			Help:      "Pipeline runs reaching a terminal status.",
		}, []string{"status"}),
		VersionConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "waterline",
			Name:      "entity_version_conflicts_total",
			Help:      "Entity upserts rejected by the record_version CAS.",
		}, []string{"entity_type"}),
		StepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "waterline",
			Name:      "step_duration_seconds",
			Help:      "Step execution latency by operation family.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"family"}),
		FanOutChildren: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "waterline",
			Name:      "fan_out_children",
			Help:      "Child runs spawned per fan-out step after dedup.",
			Buckets:   prometheus.LinearBuckets(0, 5, 10),
		}),
	}

	reg.MustRegister(
		m.SnapshotWriteFailures,
		m.ProviderAttempts,
		m.RunsCompleted,
		m.VersionConflicts,
		m.StepDuration,
		m.FanOutChildren,
	)
	return m
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
