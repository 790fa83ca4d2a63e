// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package steam

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/questlog/internal/logging"
	"github.com/tomtom215/questlog/internal/metrics"
)

// BreakerName labels the Steam circuit breaker in logs and metrics.
const BreakerName = "steam-api"

// CircuitBreakerClient wraps Client with the circuit breaker pattern.
//
// The breaker uses real time for its interval and timeout. Tests exercise
// the wrapped client directly or drive the breaker with failing servers.
type CircuitBreakerClient struct {
	client *Client
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

// NewCircuitBreakerClient wraps client with a circuit breaker:
//   - Max 3 requests in half-open state
//   - 1 minute measurement window
//   - 2 minute timeout before attempting recovery
//   - Opens after 60% failure rate with minimum 10 requests
//
// ErrNoStats replies are expected for many games and count as successes.
func NewCircuitBreakerClient(client *Client) *CircuitBreakerClient {
	metrics.CircuitBreakerState.WithLabelValues(BreakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(BreakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        BreakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNoStats)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{
		client: client,
		cb:     cb,
		name:   BreakerName,
	}
}

// execute runs fn under the breaker and records the outcome.
func (cbc *CircuitBreakerClient) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbc.cb.Execute(fn)

	switch {
	case err == nil, errors.Is(err, ErrNoStats):
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
		logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
		counts := cbc.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
	}

	return result, err
}

// castSlice type-casts a breaker result back to the wrapped call's slice type.
func castSlice[T any](result interface{}, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	typed, ok := result.([]T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// State returns the breaker state as "closed", "half-open" or "open".
func (cbc *CircuitBreakerClient) State() string {
	return stateToString(cbc.cb.State())
}

// GetOwnedGames calls Client.GetOwnedGames with circuit breaker protection
func (cbc *CircuitBreakerClient) GetOwnedGames(ctx context.Context) ([]GameRecord, error) {
	return castSlice[GameRecord](cbc.execute(func() (interface{}, error) {
		return cbc.client.GetOwnedGames(ctx)
	}))
}

// GetRecentlyPlayedGames calls Client.GetRecentlyPlayedGames with circuit breaker protection
func (cbc *CircuitBreakerClient) GetRecentlyPlayedGames(ctx context.Context) ([]GameRecord, error) {
	return castSlice[GameRecord](cbc.execute(func() (interface{}, error) {
		return cbc.client.GetRecentlyPlayedGames(ctx)
	}))
}

// RecentlyActiveGames fetches both feeds through the breaker and merges them.
func (cbc *CircuitBreakerClient) RecentlyActiveGames(ctx context.Context) ([]GameRecord, error) {
	owned, err := cbc.GetOwnedGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owned games: %w", err)
	}
	recent, err := cbc.GetRecentlyPlayedGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recently played games: %w", err)
	}
	return MergeRecentlyActive(owned, recent), nil
}

// GetPlayerAchievements calls Client.GetPlayerAchievements with circuit breaker protection
func (cbc *CircuitBreakerClient) GetPlayerAchievements(ctx context.Context, appID string) ([]PlayerAchievement, error) {
	return castSlice[PlayerAchievement](cbc.execute(func() (interface{}, error) {
		return cbc.client.GetPlayerAchievements(ctx, appID)
	}))
}

// GetGlobalAchievementPercentages calls Client.GetGlobalAchievementPercentages with circuit breaker protection
func (cbc *CircuitBreakerClient) GetGlobalAchievementPercentages(ctx context.Context, appID string) ([]GlobalAchievement, error) {
	return castSlice[GlobalAchievement](cbc.execute(func() (interface{}, error) {
		return cbc.client.GetGlobalAchievementPercentages(ctx, appID)
	}))
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
