// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/questlog/internal/models"
)

const achievementColumns = `game_id, game_platform, id, name, description, global_completion, completed, completed_time`

// UpsertAchievements writes one game's achievements in a single transaction keyed on
// (game_id, game_platform, id). Existing rows only have global completion and
// completion state updated. Returns ErrGameNotFound if the parent game row is missing.
func (db *DB) UpsertAchievements(ctx context.Context, gameID string, platform models.Platform, achievements []models.Achievement) (err error) {
	if len(achievements) == 0 {
		return nil
	}

	placeholders, err := buildInsertPlaceholders(len(achievements), 8)
	if err != nil {
		return err
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin achievement transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var parents int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM games WHERE id = ? AND platform = ?`, gameID, string(platform),
	).Scan(&parents); err != nil {
		return fmt.Errorf("failed to check parent game: %w", err)
	}
	if parents == 0 {
		err = fmt.Errorf("%w: %s/%s", ErrGameNotFound, platform, gameID)
		return err
	}

	query := `INSERT INTO achievements (` + achievementColumns + `)
		VALUES ` + placeholders + `
		ON CONFLICT (game_id, game_platform, id) DO UPDATE SET
			global_completion = EXCLUDED.global_completion,
			completed = EXCLUDED.completed,
			completed_time = EXCLUDED.completed_time`

	args := make([]interface{}, 0, len(achievements)*8)
	for i := range achievements {
		a := &achievements[i]
		if a.GameID != gameID || a.GamePlatform != platform {
			err = fmt.Errorf("achievement %s belongs to %s/%s, not %s/%s", a.ID, a.GamePlatform, a.GameID, platform, gameID)
			return err
		}
		args = append(args, a.GameID, string(a.GamePlatform), a.ID, a.Name, a.Description,
			a.GlobalCompletion, a.Completed, nullableTime(a.CompletedTime))
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert %d achievements for %s: %w", len(achievements), gameID, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit achievements for %s: %w", gameID, err)
	}
	return nil
}

// SelectAchievements returns every achievement for one game on one platform, ordered by id.
func (db *DB) SelectAchievements(ctx context.Context, gameID string, platform models.Platform) ([]models.Achievement, error) {
	query := `SELECT ` + achievementColumns + `
		FROM achievements
		WHERE game_id = ? AND game_platform = ?
		ORDER BY id`

	rows, err := db.conn.QueryContext(ctx, query, gameID, string(platform))
	if err != nil {
		return nil, fmt.Errorf("failed to query achievements: %w", err)
	}
	defer closeQuietly(rows)

	achievements := []models.Achievement{}
	for rows.Next() {
		var a models.Achievement
		var gamePlatform string
		var completedTime sql.NullTime
		if err := rows.Scan(&a.GameID, &gamePlatform, &a.ID, &a.Name, &a.Description,
			&a.GlobalCompletion, &a.Completed, &completedTime); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		a.GamePlatform = models.Platform(gamePlatform)
		a.CompletedTime = timePtr(completedTime)
		achievements = append(achievements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate achievements: %w", err)
	}
	return achievements, nil
}
