// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package api

import (
	"net/http"
	"time"
)

// Version is reported by the health endpoint. Set at build time.
var Version = "dev"

// HealthStatus is the body of GET /api/v1/health.
type HealthStatus struct {
	Status            string     `json:"status"`
	Version           string     `json:"version"`
	DatabaseConnected bool       `json:"database_connected"`
	SteamBreaker      string     `json:"steam_breaker,omitempty"`
	LastSyncTime      *time.Time `json:"last_sync_time,omitempty"`
	GamesWritten      int        `json:"last_sync_games_written"`
	UptimeSeconds     float64    `json:"uptime_seconds"`
	CardCache         CardCache  `json:"card_cache"`
}

// CardCache summarizes the card list cache.
type CardCache struct {
	Entries        int64   `json:"entries"`
	Hits           int64   `json:"hits"`
	Misses         int64   `json:"misses"`
	Evictions      int64   `json:"evictions"`
	HitRatePercent float64 `json:"hit_rate_percent"`
}

// Health reports database connectivity, Steam breaker state, and the last
// successful sync. The status is "degraded" when the database is unreachable
// or the breaker is open.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.store != nil && h.store.Ping(r.Context()) == nil

	health := HealthStatus{
		Status:            "healthy",
		Version:           Version,
		DatabaseConnected: dbConnected,
		UptimeSeconds:     time.Since(h.startTime).Seconds(),
	}
	if h.cards != nil {
		stats := h.cards.GetStats()
		health.CardCache = CardCache{
			Entries:        stats.TotalKeys,
			Hits:           stats.Hits,
			Misses:         stats.Misses,
			Evictions:      stats.Evictions,
			HitRatePercent: stats.HitRate(),
		}
	}
	if h.breaker != nil {
		health.SteamBreaker = h.breaker.State()
	}
	if h.sync != nil {
		if last := h.sync.LastSyncTime(); !last.IsZero() {
			health.LastSyncTime = &last
			health.GamesWritten = h.sync.LastResult().GamesWritten
		}
	}
	if !dbConnected || health.SteamBreaker == "open" {
		health.Status = "degraded"
	}

	NewResponseWriter(w, r).Success(health)
}

// HealthLive is the liveness probe. It never touches dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "alive"})
}
