// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package sync

import (
	"math"
	"time"

	"github.com/tomtom215/questlog/internal/logging"
	"github.com/tomtom215/questlog/internal/models"
	"github.com/tomtom215/questlog/internal/steam"
)

// NormalizeGame converts a Steam feed entry into a persisted game record.
// Offline playtime is folded into the total, never into the recent window.
func NormalizeGame(raw *steam.GameRecord) models.Game {
	total := raw.PlaytimeForever
	if raw.PlaytimeDisconnected != nil {
		total += *raw.PlaytimeDisconnected
	}

	var lastPlayed *time.Time
	if raw.RTimeLastPlayed != nil && *raw.RTimeLastPlayed != 0 {
		t := time.Unix(*raw.RTimeLastPlayed, 0).UTC()
		lastPlayed = &t
	}

	return models.Game{
		ID:             raw.ID(),
		Platform:       models.SyncedPlatform,
		Name:           raw.Name,
		PlaytimeTotal:  total,
		PlaytimeRecent: raw.RecentMinutes(),
		TimeLastPlayed: lastPlayed,
	}
}

// NormalizeAchievements inner-joins user and global achievements on the
// achievement key. Entries present in only one list are dropped and the
// drop count is logged at debug level. Duplicate keys keep their first entry.
// The result follows the order of user.
func NormalizeAchievements(gameID string, user []steam.PlayerAchievement, global []steam.GlobalAchievement) []models.Achievement {
	percents := make(map[string]float64, len(global))
	for _, g := range global {
		if _, dup := percents[g.Name]; !dup {
			percents[g.Name] = float64(g.Percent)
		}
	}

	achievements := make([]models.Achievement, 0, len(user))
	seen := make(map[string]struct{}, len(user))
	for _, u := range user {
		if _, dup := seen[u.APIName]; dup {
			continue
		}
		percent, ok := percents[u.APIName]
		if !ok {
			continue
		}
		seen[u.APIName] = struct{}{}

		a := models.Achievement{
			GameID:           gameID,
			GamePlatform:     models.SyncedPlatform,
			ID:               u.APIName,
			Name:             u.Name,
			Description:      u.Description,
			GlobalCompletion: round2(percent),
			Completed:        u.UnlockTime != 0,
		}
		if a.Completed {
			t := time.Unix(u.UnlockTime, 0).UTC()
			a.CompletedTime = &t
		}
		achievements = append(achievements, a)
	}

	droppedUser := len(user) - len(achievements)
	droppedGlobal := len(percents) - len(achievements)
	if droppedUser > 0 || droppedGlobal > 0 {
		logging.Debug().
			Str("game_id", gameID).
			Int("dropped_user", droppedUser).
			Int("dropped_global", droppedGlobal).
			Int("kept", len(achievements)).
			Msg("Dropped unjoinable achievement records")
	}

	return achievements
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
