// Package metrics exposes solver metrics on the controller-runtime registry,
// which the manager serves on its metrics endpoint.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	ctrlmetrics "sigs.k8s.io/controller-runtime/pkg/metrics"

	"fairdiv/pkg/division"
)

var factory = promauto.With(ctrlmetrics.Registry)

var (
	// Solver metrics
	metricSolveDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fairdiv",
			Name:      "solve_duration_seconds",
			Help:      "Time spent validating and solving one division problem",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
	)

	metricSolves = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fairdiv",
			Name:      "solves_total",
			Help:      "Division problems processed, by result",
		},
		[]string{"result"},
	)

	metricRejections = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fairdiv",
			Name:      "rejections_total",
			Help:      "Division problems rejected, by reason",
		},
		[]string{"reason"},
	)

	metricDivisionsFound = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fairdiv",
			Name:      "divisions_found_total",
			Help:      "Divisions found, by kind",
		},
		[]string{"kind"},
	)

	// Per-object metrics
	metricFrontierSize = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "fairdiv",
			Name:      "frontier_size",
			Help:      "Pareto-optimal indivisible assignments of the last solve",
		},
		[]string{"namespace", "name"},
	)

	metricBelongsTo = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "fairdiv",
			Name:      "belongs_to",
			Help:      "Statement 1 class of the last solve: 0=none, 1=efficient, 2=proportional, 3=equitable, 4=fair",
		},
		[]string{"namespace", "name"},
	)
)

const (
	ResultSolved  = "solved"
	ResultInvalid = "invalid"
)

// RecordSolve records a successful solve of namespace/name.
func RecordSolve(namespace, name string, d time.Duration, rep *division.Report) {
	metricSolveDuration.Observe(d.Seconds())
	metricSolves.WithLabelValues(ResultSolved).Inc()
	for _, k := range []division.Kind{division.KindEfficient, division.KindProportional, division.KindEquitable, division.KindFair} {
		if rep.Solution(k) != nil {
			metricDivisionsFound.WithLabelValues(k.String()).Inc()
		}
	}
	metricFrontierSize.WithLabelValues(namespace, name).Set(float64(len(rep.Frontier)))
	metricBelongsTo.WithLabelValues(namespace, name).Set(float64(rep.Statement1.BelongsTo))
}

// RecordRejection records a problem rejected with reason.
func RecordRejection(namespace, name, reason string, d time.Duration) {
	metricSolveDuration.Observe(d.Seconds())
	metricSolves.WithLabelValues(ResultInvalid).Inc()
	metricRejections.WithLabelValues(reason).Inc()
	ClearDivisionMetrics(namespace, name)
}

// ClearDivisionMetrics removes the per-object series of namespace/name.
func ClearDivisionMetrics(namespace, name string) {
	metricFrontierSize.DeleteLabelValues(namespace, name)
	metricBelongsTo.DeleteLabelValues(namespace, name)
}
