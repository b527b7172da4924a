package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pcsready/claim-engine/internal/claims"
)

// Collector manages Prometheus metrics for the validation engine.
type Collector struct {
	registry *prometheus.Registry

	validationsTotal   *prometheus.CounterVec
	flagsTotal         *prometheus.CounterVec
	validationDuration prometheus.Histogram
	lastScore          prometheus.Gauge
	scoreDistribution  *prometheus.CounterVec
}

// NewCollector creates and registers the engine metrics on a dedicated
// registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		validationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "claim_engine_validations_total",
				Help: "Total number of validation calls by layer",
			},
			[]string{"layer"},
		),
		flagsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "claim_engine_flags_total",
				Help: "Total number of validation flags emitted",
			},
			[]string{"severity", "category"},
		),
		validationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "claim_engine_validation_duration_seconds",
				Help:    "Duration of validation calls",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
		),
		lastScore: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "claim_engine_last_confidence_score",
				Help: "Confidence score of the most recent full validation",
			},
		),
		scoreDistribution: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "claim_engine_confidence_levels_total",
				Help: "Count of full validations by confidence level",
			},
			[]string{"level"},
		),
	}
}

// Registry exposes the underlying registry for the /metrics handler.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveValidation records one validation call and its emitted flags.
func (c *Collector) ObserveValidation(layer string, flags []claims.ValidationFlag, duration time.Duration) {
	c.validationsTotal.WithLabelValues(layer).Inc()
	c.validationDuration.Observe(duration.Seconds())
	for _, f := range flags {
		c.flagsTotal.WithLabelValues(string(f.Severity), string(f.Category)).Inc()
	}
}

// ObserveAssessment records the outcome of a full validation.
func (c *Collector) ObserveAssessment(a claims.ConfidenceAssessment) {
	c.lastScore.Set(float64(a.Overall))
	c.scoreDistribution.WithLabelValues(string(a.Level)).Inc()
}
