// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/questlog/internal/cards"
	"github.com/tomtom215/questlog/internal/database"
	"github.com/tomtom215/questlog/internal/logging"
	"github.com/tomtom215/questlog/internal/models"
)

// ListGames returns every game card, filtered and sorted.
//
// Query parameters:
//   - sort: name | playtime | lastPlayed | completion (default playtime)
//   - platform: only cards that include this platform
//   - q: case-insensitive name substring
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	query := r.URL.Query()
	req := GamesRequest{
		Sort:     query.Get("sort"),
		Platform: query.Get("platform"),
		Query:    query.Get("q"),
	}
	if !validate(rw, &req) {
		return
	}

	all, cached, err := h.loadCards(r.Context())
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	sortKey := cards.DefaultGameSort
	if req.Sort != "" {
		sortKey = cards.GameSort(req.Sort)
	}
	result := cards.FilterCards(all, cards.Filter{
		Platform: models.Platform(req.Platform),
		Query:    req.Query,
	})
	if err := cards.SortCards(result, sortKey); err != nil {
		rw.BadRequest(err.Error())
		return
	}

	count := len(result)
	rw.SuccessWithMeta(result, &APIMeta{Count: &count, Cached: cached})
}

// GetGame returns one game card with the priority platform's achievements.
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req := GameDetailRequest{
		ID:   chi.URLParam(r, "id"),
		Sort: r.URL.Query().Get("sort"),
	}
	if !validate(rw, &req) {
		return
	}

	rows, err := h.store.SelectGameCardRows(r.Context(), req.ID)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	if len(rows) == 0 {
		rw.NotFound("Game not found")
		return
	}
	card := cards.BuildCard(rows)

	achievements, err := h.store.SelectAchievements(r.Context(), card.GameID, card.Platform)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	sortKey := cards.DefaultAchievementSort
	if req.Sort != "" {
		sortKey = cards.AchievementSort(req.Sort)
	}
	if err := cards.SortAchievements(achievements, sortKey); err != nil {
		rw.BadRequest(err.Error())
		return
	}

	rw.Success(models.GameDetail{Card: card, Achievements: achievements})
}

// UpsertManualGame creates or replaces a game on a hand-entered platform,
// then writes any achievements sent with it.
func (h *Handler) UpsertManualGame(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req models.ManualGameRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		rw.BadRequest("Invalid JSON body")
		return
	}
	if !validate(rw, &req) {
		return
	}

	game := req.Game()
	if err := h.store.UpsertManualGame(r.Context(), &game); err != nil {
		if errors.Is(err, database.ErrSyncedPlatform) || errors.Is(err, database.ErrInvalidPlatform) {
			rw.BadRequest(err.Error())
			return
		}
		rw.DatabaseError(err)
		return
	}
	h.InvalidateCards()

	achievements := req.AchievementRecords()
	if len(achievements) > 0 {
		if err := h.store.UpsertAchievements(r.Context(), game.ID, game.Platform, achievements); err != nil {
			rw.DatabaseError(err)
			return
		}
		h.InvalidateCards()
	}

	logging.Ctx(r.Context()).Info().
		Str("game_id", game.ID).
		Str("platform", string(game.Platform)).
		Int("achievements", len(achievements)).
		Msg("Manual game saved")
	rw.Success(models.ManualEntry{Game: game, Achievements: achievements})
}
