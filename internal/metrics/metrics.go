// StyleScout - Guided Product Discovery and Matching Engine
// Copyright 2026 StyleScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/stylescout/stylescout

// Package metrics provides Prometheus instrumentation for the API
// surface, the match pipeline, the rerank client, and the feedback
// store. All collectors are registered on the default registry and
// exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API metrics.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stylescout_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylescout_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stylescout_api_active_requests",
			Help: "Number of API requests currently in flight",
		},
	)

	// Match pipeline metrics.
	MatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stylescout_match_duration_seconds",
			Help:    "Duration of match pipeline runs in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	MatchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stylescout_match_results",
			Help:    "Number of products returned per match run",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
		},
	)

	// Rerank metrics.
	RerankOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylescout_rerank_outcomes_total",
			Help: "Rerank outcomes by result (embeddings or fallback reason)",
		},
		[]string{"outcome"},
	)

	RerankDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stylescout_rerank_duration_seconds",
			Help:    "Duration of rerank calls including the embedding request",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Feedback metrics.
	FeedbackEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylescout_feedback_events_total",
			Help: "Feedback events recorded, by event type",
		},
		[]string{"type"},
	)

	FeedbackLogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stylescout_feedback_log_size",
			Help: "Current number of events in the feedback log",
		},
	)

	// Circuit breaker state for the embedding upstream.
	// 0 = closed, 1 = half-open, 2 = open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stylescout_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"breaker"},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// RecordMatch records one match pipeline run.
func RecordMatch(duration time.Duration, resultCount int) {
	MatchDuration.Observe(duration.Seconds())
	MatchResults.Observe(float64(resultCount))
}

// RecordRerank records one rerank call. outcome is "embeddings" on
// success, otherwise the fallback reason string.
func RecordRerank(outcome string, duration time.Duration) {
	RerankOutcomes.WithLabelValues(outcome).Inc()
	RerankDuration.Observe(duration.Seconds())
}

// RecordFeedbackEvent records one stored feedback event.
func RecordFeedbackEvent(eventType string, logSize int) {
	FeedbackEventsTotal.WithLabelValues(eventType).Inc()
	FeedbackLogSize.Set(float64(logSize))
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
