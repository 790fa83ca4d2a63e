// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Sync stage labels for SyncErrors.
const (
	StageDiff         = "diff"
	StageGameWrite    = "game_write"
	StageAchievements = "achievements"
	StageOther        = "other"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "questlog_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "questlog_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "questlog_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Sync Operation Metrics
	SyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "questlog_sync_duration_seconds",
			Help:    "Duration of recent-activity sync cycles in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	SyncGamesWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "questlog_sync_games_written_total",
			Help: "Total number of game rows upserted by sync",
		},
	)

	SyncAchievementsWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "questlog_sync_achievements_written_total",
			Help: "Total number of achievement rows upserted by sync",
		},
	)

	SyncErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "questlog_sync_errors_total",
			Help: "Total number of sync errors by stage",
		},
		[]string{"stage"},
	)

	SyncLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "questlog_sync_last_success_timestamp",
			Help: "Unix timestamp of the last sync cycle that completed without aborting",
		},
	)

	// Card cache
	CardCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "questlog_card_cache_hits_total",
			Help: "Total number of game card cache hits",
		},
	)

	CardCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "questlog_card_cache_misses_total",
			Help: "Total number of game card cache misses",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "questlog_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "questlog_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "questlog_circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "questlog_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordSyncCycle records one completed sync cycle. A cycle that aborted
// (err != nil) is counted under stage and does not move SyncLastSuccess.
func RecordSyncCycle(duration time.Duration, games, achievements int, stage string, err error) {
	SyncDuration.Observe(duration.Seconds())
	SyncGamesWritten.Add(float64(games))
	SyncAchievementsWritten.Add(float64(achievements))
	if err != nil {
		if stage == "" {
			stage = StageOther
		}
		SyncErrors.WithLabelValues(stage).Inc()
		return
	}
	SyncLastSuccess.Set(float64(time.Now().Unix()))
}

// RecordSyncError counts a recovered per-entity sync failure.
func RecordSyncError(stage string) {
	SyncErrors.WithLabelValues(stage).Inc()
}

// RecordCardCache records a card cache lookup.
func RecordCardCache(hit bool) {
	if hit {
		CardCacheHits.Inc()
	} else {
		CardCacheMisses.Inc()
	}
}
