// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package sync

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/questlog/internal/metrics"
	"github.com/tomtom215/questlog/internal/models"
	"github.com/tomtom215/questlog/internal/steam"
)

// DefaultRateLimitPause is the fixed delay between Steam achievement calls.
const DefaultRateLimitPause = time.Second

// Source is the external recent-activity source.
// Implemented by *steam.Client and *steam.CircuitBreakerClient.
type Source interface {
	RecentlyActiveGames(ctx context.Context) ([]steam.GameRecord, error)
	GetPlayerAchievements(ctx context.Context, appID string) ([]steam.PlayerAchievement, error)
	GetGlobalAchievementPercentages(ctx context.Context, appID string) ([]steam.GlobalAchievement, error)
}

// Store is the persisted store as seen by the write path.
// Implemented by *database.DB.
type Store interface {
	SelectRecentSteamGames(ctx context.Context) ([]models.Game, error)
	UpsertGames(ctx context.Context, games []models.Game) error
	UpsertAchievements(ctx context.Context, gameID string, platform models.Platform, achievements []models.Achievement) error
}

// EngineConfig configures an Engine.
type EngineConfig struct {
	// ExcludedAppIDs are never synced.
	ExcludedAppIDs []string
	// RateLimitPause follows the game write and every per-game achievement
	// step that reached Steam or the store; a game with no achievements moves
	// on without it. Zero or negative uses DefaultRateLimitPause.
	RateLimitPause time.Duration
}

// Engine runs the recent-activity reconciliation pipeline.
type Engine struct {
	source   Source
	store    Store
	activity ActivityLog
	excluded ExclusionSet
	pause    time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewEngine creates an Engine. All collaborators are required.
func NewEngine(source Source, store Store, activity ActivityLog, cfg EngineConfig) *Engine {
	pause := cfg.RateLimitPause
	if pause <= 0 {
		pause = DefaultRateLimitPause
	}
	return &Engine{
		source:   source,
		store:    store,
		activity: activity,
		excluded: NewExclusionSet(cfg.ExcludedAppIDs),
		pause:    pause,
		sleep:    sleepContext,
	}
}

// SyncGamesAndAchievements runs one sync cycle. Every outcome is reported
// to the ActivityLog. It returns an error only when the cycle aborts: the
// diff inputs cannot be read, the batched game write fails, or ctx ends.
// Per-game achievement failures are logged and skipped.
func (e *Engine) SyncGamesAndAchievements(ctx context.Context) (result models.SyncResult, err error) {
	result.StartedAt = time.Now().UTC()
	stage := ""
	defer func() {
		result.Duration = time.Since(result.StartedAt)
		metrics.RecordSyncCycle(result.Duration, result.GamesWritten, result.AchievementsWritten, stage, err)
	}()

	games, err := e.ComputeGamesToSync(ctx)
	if err != nil {
		stage = metrics.StageDiff
		e.record(ctx, models.SeverityError, fmt.Sprintf("Failed to determine games to sync: %v", err))
		return result, err
	}

	if len(games) == 0 {
		e.record(ctx, models.SeverityInfo, "No games to sync")
		return result, nil
	}

	names := gameNames(games)
	if err = e.store.UpsertGames(ctx, games); err != nil {
		stage = metrics.StageGameWrite
		e.record(ctx, models.SeverityError, fmt.Sprintf("Failed to write game(s): %s - aborting sync: %v", names, err))
		return result, fmt.Errorf("failed to upsert games: %w", err)
	}
	result.GamesWritten = len(games)
	e.record(ctx, models.SeverityInfo, fmt.Sprintf("Wrote %d game(s): %s", len(games), names))

	if err = e.sleep(ctx, e.pause); err != nil {
		return result, err
	}

	for i := range games {
		if err = e.syncAchievements(ctx, &games[i], &result); err != nil {
			return result, err
		}
	}

	return result, nil
}

// syncAchievements fetches, normalizes and writes one game's achievements.
// Only context cancellation is returned; everything else is logged.
func (e *Engine) syncAchievements(ctx context.Context, game *models.Game, result *models.SyncResult) error {
	achievements, err := e.fetchAchievements(ctx, game.ID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		result.AchievementFailures++
		metrics.RecordSyncError(metrics.StageAchievements)
		e.record(ctx, models.SeverityError, fmt.Sprintf("Failed to fetch achievements for %s: %v", game.Name, err))
		return e.sleep(ctx, e.pause)
	}

	if achievements == nil {
		result.GamesWithoutStats++
	}
	if len(achievements) == 0 {
		e.record(ctx, models.SeverityInfo, fmt.Sprintf("No achievements to sync for %s", game.Name))
		return nil
	}

	if err := e.store.UpsertAchievements(ctx, game.ID, game.Platform, achievements); err != nil {
		result.AchievementFailures++
		metrics.RecordSyncError(metrics.StageAchievements)
		e.record(ctx, models.SeverityError, fmt.Sprintf("Failed to write achievement(s) for %s: %v", game.Name, err))
	} else {
		result.AchievementsWritten += len(achievements)
		e.record(ctx, models.SeverityInfo, fmt.Sprintf("Wrote %d achievement(s) for %s", len(achievements), game.Name))
	}

	return e.sleep(ctx, e.pause)
}

// fetchAchievements returns nil, nil when Steam has no stats for the game.
func (e *Engine) fetchAchievements(ctx context.Context, gameID string) ([]models.Achievement, error) {
	user, err := e.source.GetPlayerAchievements(ctx, gameID)
	if errors.Is(err, steam.ErrNoStats) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(user) == 0 {
		return []models.Achievement{}, nil
	}

	global, err := e.source.GetGlobalAchievementPercentages(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return NormalizeAchievements(gameID, user, global), nil
}

// record writes to the activity log. Persist failures are already logged
// by the ActivityLog and do not affect the cycle.
func (e *Engine) record(ctx context.Context, severity models.Severity, message string) {
	_ = e.activity.Write(ctx, severity, message)
}

func gameNames(games []models.Game) string {
	names := make([]string, len(games))
	for i := range games {
		names[i] = games[i].Name
	}
	return strings.Join(names, ", ")
}

// sleepContext blocks for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
