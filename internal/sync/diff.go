// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package sync

import (
	"context"
	"fmt"

	"github.com/tomtom215/questlog/internal/models"
	"github.com/tomtom215/questlog/internal/steam"
)

// ExclusionSet holds app IDs that are never synced.
type ExclusionSet map[string]struct{}

// NewExclusionSet builds a set from ids.
func NewExclusionSet(ids []string) ExclusionSet {
	set := make(ExclusionSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is excluded.
func (s ExclusionSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// ComputeGamesToSync returns the games that must be written this cycle by
// comparing Steam's recently active snapshot with the stored one.
func (e *Engine) ComputeGamesToSync(ctx context.Context) ([]models.Game, error) {
	external, err := e.source.RecentlyActiveGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recently active games: %w", err)
	}

	persisted, err := e.store.SelectRecentSteamGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read recently active games: %w", err)
	}

	return DiffRecentActivity(external, persisted, e.excluded), nil
}

// DiffRecentActivity computes the minimal set of game writes:
//
//  1. every non-excluded external game whose recent playtime differs from
//     its stored row, or that has no stored row, as a normalized record;
//  2. every non-excluded stored row missing from external, unchanged except
//     for PlaytimeRecent = 0.
//
// persisted must hold only synced-platform rows with recent playtime. Each
// game ID appears at most once in the result.
func DiffRecentActivity(external []steam.GameRecord, persisted []models.Game, excluded ExclusionSet) []models.Game {
	stored := make(map[string]*models.Game, len(persisted))
	for i := range persisted {
		stored[persisted[i].ID] = &persisted[i]
	}

	var toSync []models.Game
	queued := make(map[string]struct{})
	reported := make(map[string]struct{}, len(external))

	for i := range external {
		raw := &external[i]
		id := raw.ID()
		reported[id] = struct{}{}

		if excluded.Contains(id) {
			continue
		}
		if _, ok := queued[id]; ok {
			continue
		}

		if row, ok := stored[id]; ok && row.PlaytimeRecent == raw.RecentMinutes() {
			continue
		}
		toSync = append(toSync, NormalizeGame(raw))
		queued[id] = struct{}{}
	}

	for i := range persisted {
		row := persisted[i]
		if excluded.Contains(row.ID) {
			continue
		}
		if _, ok := reported[row.ID]; ok {
			continue
		}
		if _, ok := queued[row.ID]; ok {
			continue
		}
		row.PlaytimeRecent = 0
		toSync = append(toSync, row)
		queued[row.ID] = struct{}{}
	}

	return toSync
}
