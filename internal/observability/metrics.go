package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// climatology service.
type Metrics struct {
	QueriesTotal  prometheus.Counter
	QueryDuration prometheus.Histogram

	// Per-parameter analysis metrics.
	ParameterAnalyses  *prometheus.CounterVec // labels: parameter, outcome={success,error}
	DegradedSubresults *prometheus.CounterVec // labels: analysis={trend,extreme_values}

	// Historical-data provider metrics.
	ProviderRequests   *prometheus.CounterVec // labels: outcome={success,error}
	ProviderCache      *prometheus.CounterVec // labels: result={hit,miss}
	SyntheticFallbacks prometheus.Counter

	// Event publishing metrics.
	AssessmentsPublished prometheus.Counter
	PublishErrors        prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		QueriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_risk",
			Name:      "queries_total",
			Help:      "Total analysis queries processed.",
		}),
		QueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "climate_risk",
			Name:      "query_duration_seconds",
			Help:      "Duration of a complete multi-parameter analysis query.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		ParameterAnalyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_risk",
			Name:      "parameter_analyses_total",
			Help:      "Per-parameter analyses by parameter code and outcome.",
		}, []string{"parameter", "outcome"}),
		DegradedSubresults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_risk",
			Name:      "degraded_subresults_total",
			Help:      "Assessments whose trend or extreme-value analysis degraded to an error note.",
		}, []string{"analysis"}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_risk",
			Name:      "provider_requests_total",
			Help:      "Historical-data provider requests by outcome.",
		}, []string{"outcome"}),
		ProviderCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_risk",
			Name:      "provider_cache_total",
			Help:      "Provider cache lookups by result.",
		}, []string{"result"}),
		SyntheticFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_risk",
			Name:      "synthetic_fallbacks_total",
			Help:      "Samples served by the synthetic generator because too little real data was available.",
		}),
		AssessmentsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_risk",
			Name:      "assessments_published_total",
			Help:      "Assessment events written to the sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_risk",
			Name:      "publish_errors_total",
			Help:      "Assessment event publish failures.",
		}),
	}

	prometheus.MustRegister(
		m.QueriesTotal,
		m.QueryDuration,
		m.ParameterAnalyses,
		m.DegradedSubresults,
		m.ProviderRequests,
		m.ProviderCache,
		m.SyntheticFallbacks,
		m.AssessmentsPublished,
		m.PublishErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		QueriesTotal:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "climate_risk", Name: "queries_total"}),
		QueryDuration:        prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "climate_risk", Name: "query_duration_seconds"}),
		ParameterAnalyses:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "climate_risk", Name: "parameter_analyses_total"}, []string{"parameter", "outcome"}),
		DegradedSubresults:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "climate_risk", Name: "degraded_subresults_total"}, []string{"analysis"}),
		ProviderRequests:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "climate_risk", Name: "provider_requests_total"}, []string{"outcome"}),
		ProviderCache:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "climate_risk", Name: "provider_cache_total"}, []string{"result"}),
		SyntheticFallbacks:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "climate_risk", Name: "synthetic_fallbacks_total"}),
		AssessmentsPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "climate_risk", Name: "assessments_published_total"}),
		PublishErrors:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "climate_risk", Name: "publish_errors_total"}),
	}
}
