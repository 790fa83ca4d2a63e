// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tomtom215/questlog/internal/models"
)

const gameColumns = `id, platform, name, playtime_total, playtime_recent, time_last_played`

// SelectRecentSteamGames returns every synced-platform game with recent playtime.
func (db *DB) SelectRecentSteamGames(ctx context.Context) ([]models.Game, error) {
	query := `SELECT ` + gameColumns + `
		FROM games
		WHERE platform = ? AND playtime_recent > 0
		ORDER BY id`

	rows, err := db.conn.QueryContext(ctx, query, string(models.SyncedPlatform))
	if err != nil {
		return nil, fmt.Errorf("failed to query recent games: %w", err)
	}
	defer closeQuietly(rows)

	var games []models.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recent games: %w", err)
	}
	return games, nil
}

// UpsertGames writes all games in one statement keyed on (id, platform).
// Existing rows keep their name; only playtimes and last played are updated.
// The stored total never decreases.
func (db *DB) UpsertGames(ctx context.Context, games []models.Game) error {
	if len(games) == 0 {
		return nil
	}

	placeholders, err := buildInsertPlaceholders(len(games), 6)
	if err != nil {
		return err
	}

	query := `INSERT INTO games (` + gameColumns + `)
		VALUES ` + placeholders + `
		ON CONFLICT (id, platform) DO UPDATE SET
			playtime_total = GREATEST(games.playtime_total, EXCLUDED.playtime_total),
			playtime_recent = EXCLUDED.playtime_recent,
			time_last_played = EXCLUDED.time_last_played`

	args := make([]interface{}, 0, len(games)*6)
	for i := range games {
		g := &games[i]
		args = append(args, g.ID, string(g.Platform), g.Name, g.PlaytimeTotal, g.PlaytimeRecent, nullableTime(g.TimeLastPlayed))
	}

	if _, err := db.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert %d games: %w", len(games), err)
	}
	return nil
}

// UpsertManualGame inserts or fully updates a game on a hand-entered platform.
// Unlike UpsertGames the name is updated too.
func (db *DB) UpsertManualGame(ctx context.Context, game *models.Game) error {
	if !game.Platform.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPlatform, game.Platform)
	}
	if !game.Platform.Manual() {
		return ErrSyncedPlatform
	}

	query := `INSERT INTO games (` + gameColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id, platform) DO UPDATE SET
			name = EXCLUDED.name,
			playtime_total = EXCLUDED.playtime_total,
			playtime_recent = EXCLUDED.playtime_recent,
			time_last_played = EXCLUDED.time_last_played`

	_, err := db.conn.ExecContext(ctx, query,
		game.ID, string(game.Platform), game.Name, game.PlaytimeTotal, game.PlaytimeRecent, nullableTime(game.TimeLastPlayed))
	if err != nil {
		return fmt.Errorf("failed to upsert manual game: %w", err)
	}
	return nil
}

// GetGame returns a single game record.
func (db *DB) GetGame(ctx context.Context, id string, platform models.Platform) (*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = ? AND platform = ?`

	g, err := scanGame(db.conn.QueryRowContext(ctx, query, id, string(platform)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// SelectGameCardRows returns every game joined with its achievement counts,
// ordered by id then platform. A non-empty gameID restricts the result to one game.
func (db *DB) SelectGameCardRows(ctx context.Context, gameID string) ([]models.GameCardRow, error) {
	var where string
	var args []interface{}
	if gameID != "" {
		where = `WHERE g.id = ?`
		args = append(args, gameID)
	}

	query := `SELECT
			g.id, g.platform, g.name, g.playtime_total, g.playtime_recent, g.time_last_played,
			COUNT(a.id) AS total_achievements,
			CAST(COALESCE(SUM(CASE WHEN a.completed THEN 1 ELSE 0 END), 0) AS BIGINT) AS completed_achievements
		FROM games g
		LEFT JOIN achievements a ON a.game_id = g.id AND a.game_platform = g.platform
		` + where + `
		GROUP BY g.id, g.platform, g.name, g.playtime_total, g.playtime_recent, g.time_last_played
		ORDER BY g.id, g.platform`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query game cards: %w", err)
	}
	defer closeWithLog(rows, "game card rows")

	var result []models.GameCardRow
	for rows.Next() {
		var r models.GameCardRow
		var platform string
		var lastPlayed sql.NullTime
		if err := rows.Scan(&r.ID, &platform, &r.Name, &r.PlaytimeTotal, &r.PlaytimeRecent, &lastPlayed,
			&r.TotalAchievements, &r.CompletedAchievements); err != nil {
			return nil, fmt.Errorf("failed to scan game card row: %w", err)
		}
		r.Platform = models.Platform(platform)
		r.TimeLastPlayed = timePtr(lastPlayed)
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate game cards: %w", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGame(s rowScanner) (models.Game, error) {
	var g models.Game
	var platform string
	var lastPlayed sql.NullTime
	if err := s.Scan(&g.ID, &platform, &g.Name, &g.PlaytimeTotal, &g.PlaytimeRecent, &lastPlayed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return g, err
		}
		return g, fmt.Errorf("failed to scan game: %w", err)
	}
	g.Platform = models.Platform(platform)
	g.TimeLastPlayed = timePtr(lastPlayed)
	return g, nil
}
