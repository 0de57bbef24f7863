package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	analysesTotal       *prometheus.CounterVec
	analysisDuration    prometheus.Histogram
	scoreDistribution   prometheus.Histogram
	upstreamFetches     *prometheus.CounterVec
	upstreamDuration    prometheus.Histogram
	chartRenders        *prometheus.CounterVec
	circuitBreakerState *prometheus.GaugeVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		analysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cibil_analyses_total",
				Help: "Total number of credit analyses performed",
			},
			[]string{"status"},
		),
		analysisDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cibil_analysis_duration_milliseconds",
				Help:    "Credit analysis duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		scoreDistribution: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cibil_score_distribution",
				Help:    "Distribution of computed credit scores",
				Buckets: prometheus.LinearBuckets(300, 50, 13),
			},
		),
		upstreamFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "data_processor_fetches_total",
				Help: "Total number of upstream session fetches by outcome",
			},
			[]string{"status"},
		),
		upstreamDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "data_processor_fetch_duration_milliseconds",
				Help:    "Upstream session fetch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		chartRenders: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "score_chart_renders_total",
				Help: "Total number of score chart render attempts",
			},
			[]string{"status"},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "analysis.completed":
		m.analysesTotal.WithLabelValues("completed").Inc()
	case "analysis.failed":
		m.analysesTotal.WithLabelValues("failed").Inc()
	case "upstream.fetch", "upstream.rejected":
		if status != "" {
			m.upstreamFetches.WithLabelValues(status).Inc()
		}
	case "chart.rendered":
		m.chartRenders.WithLabelValues("success").Inc()
	case "chart.failed":
		m.chartRenders.WithLabelValues("failed").Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "analysis.duration":
		m.analysisDuration.Observe(float64(duration.Milliseconds()))
	case "upstream.fetch":
		m.upstreamDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "analysis.score":
		m.scoreDistribution.Observe(value)
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
