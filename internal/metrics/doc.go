// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

/*
Package metrics provides Prometheus metrics for Questlog.

Metrics are registered on the default registry with promauto and served at
/metrics in Prometheus text format:

	curl http://localhost:3858/metrics

# Available Metrics

HTTP:
  - questlog_api_requests_total{method, endpoint, status_code}
  - questlog_api_request_duration_seconds{method, endpoint}
  - questlog_api_active_requests

Sync:
  - questlog_sync_duration_seconds
  - questlog_sync_games_written_total
  - questlog_sync_achievements_written_total
  - questlog_sync_errors_total{stage}
  - questlog_sync_last_success_timestamp

Steam circuit breaker:
  - questlog_circuit_breaker_state{name}
  - questlog_circuit_breaker_requests_total{name, result}
  - questlog_circuit_breaker_consecutive_failures{name}
  - questlog_circuit_breaker_state_transitions_total{name, from_state, to_state}

Card cache:
  - questlog_card_cache_hits_total
  - questlog_card_cache_misses_total
*/
package metrics
