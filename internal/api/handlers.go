// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package api

import (
	"context"
	"time"

	"github.com/tomtom215/questlog/internal/cache"
	"github.com/tomtom215/questlog/internal/cards"
	"github.com/tomtom215/questlog/internal/metrics"
	"github.com/tomtom215/questlog/internal/models"
)

// cardsCacheKey holds the unfiltered card list.
const cardsCacheKey = "cards:all"

// Store is the read path plus manual entry. Implemented by *database.DB.
type Store interface {
	Ping(ctx context.Context) error
	SelectGameCardRows(ctx context.Context, gameID string) ([]models.GameCardRow, error)
	SelectAchievements(ctx context.Context, gameID string, platform models.Platform) ([]models.Achievement, error)
	ReadLogs(ctx context.Context, limit int) ([]models.LogLine, error)
	UpsertManualGame(ctx context.Context, game *models.Game) error
	UpsertAchievements(ctx context.Context, gameID string, platform models.Platform, achievements []models.Achievement) error
}

// SyncTrigger runs sync cycles on demand. Implemented by *sync.Manager.
type SyncTrigger interface {
	TriggerSync(ctx context.Context) (models.SyncResult, error)
	LastSyncTime() time.Time
	LastResult() models.SyncResult
}

// BreakerReporter exposes the Steam circuit breaker state.
// Implemented by *steam.CircuitBreakerClient.
type BreakerReporter interface {
	State() string
}

// Handler serves every API endpoint.
type Handler struct {
	store     Store
	sync      SyncTrigger
	breaker   BreakerReporter
	cards     *cache.Cache[[]models.GameCard]
	startTime time.Time
}

// NewHandler creates the API handler. breaker may be nil.
func NewHandler(store Store, syncer SyncTrigger, breaker BreakerReporter, cardCacheTTL time.Duration) *Handler {
	return &Handler{
		store:     store,
		sync:      syncer,
		breaker:   breaker,
		cards:     cache.New[[]models.GameCard](cardCacheTTL),
		startTime: time.Now(),
	}
}

// InvalidateCards drops cached cards. Registered as the sync manager's
// completion callback.
func (h *Handler) InvalidateCards() {
	h.cards.Clear()
}

// Close releases the card cache.
func (h *Handler) Close() {
	h.cards.Close()
}

// loadCards returns every card in store order, from cache when fresh.
// Callers must not modify the returned slice. A load that overlaps an
// InvalidateCards call is served but not cached.
func (h *Handler) loadCards(ctx context.Context) ([]models.GameCard, bool, error) {
	if all, ok := h.cards.Get(cardsCacheKey); ok {
		metrics.RecordCardCache(true)
		return all, true, nil
	}
	metrics.RecordCardCache(false)

	gen := h.cards.Generation()
	rows, err := h.store.SelectGameCardRows(ctx, "")
	if err != nil {
		return nil, false, err
	}
	all := cards.BuildAllCards(rows)
	h.cards.SetIfGeneration(cardsCacheKey, all, gen)
	return all, false, nil
}
