// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/questlog/internal/logging"
)

// Migration represents a versioned database migration.
type Migration struct {
	Version     int
	Name        string
	Description string
	SQL         string
	AppliedAt   time.Time
}

const schemaMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	applied_at TIMESTAMPTZ NOT NULL
);
`

// migrations are append-only. Never modify or remove one that has shipped.
//
// achievements.(game_id, game_platform) logically references games(id, platform).
// The reference is enforced by UpsertAchievements rather than a REFERENCES
// clause because DuckDB rejects upserts on parent rows that have children.
var migrations = []Migration{
	{
		Version:     1,
		Name:        "create_games",
		Description: "Per-platform game records",
		SQL: `CREATE TABLE IF NOT EXISTS games (
			id TEXT NOT NULL,
			platform TEXT NOT NULL CHECK (platform IN ('Steam', 'Xbox', 'Switch')),
			name TEXT NOT NULL,
			playtime_total INTEGER NOT NULL DEFAULT 0,
			playtime_recent INTEGER NOT NULL DEFAULT 0,
			time_last_played TIMESTAMPTZ,
			PRIMARY KEY (id, platform)
		)`,
	},
	{
		Version:     2,
		Name:        "create_achievements",
		Description: "Per-game achievements keyed by the owning game's platform",
		SQL: `CREATE TABLE IF NOT EXISTS achievements (
			game_id TEXT NOT NULL,
			game_platform TEXT NOT NULL,
			id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			global_completion DOUBLE NOT NULL DEFAULT 0,
			completed BOOLEAN NOT NULL DEFAULT false,
			completed_time TIMESTAMPTZ,
			PRIMARY KEY (game_id, game_platform, id)
		)`,
	},
	{
		Version:     3,
		Name:        "create_logs",
		Description: "Sync activity log",
		SQL: `CREATE TABLE IF NOT EXISTS logs (
			timestamp TIMESTAMPTZ NOT NULL,
			severity TEXT NOT NULL CHECK (severity IN ('info', 'warn', 'error')),
			message TEXT NOT NULL
		)`,
	},
}

func (db *DB) getAppliedMigrations(ctx context.Context) (map[int]Migration, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT version, name, description, applied_at FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer closeQuietly(rows)

	applied := make(map[int]Migration)
	for rows.Next() {
		var m Migration
		if err := rows.Scan(&m.Version, &m.Name, &m.Description, &m.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied[m.Version] = m
	}
	return applied, rows.Err()
}

// runVersionedMigrations executes migrations that have not been applied yet.
func (db *DB) runVersionedMigrations(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, schemaMigrationsTable); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := db.getAppliedMigrations(ctx)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	newMigrations := 0
	for _, m := range migrations {
		if _, exists := applied[m.Version]; exists {
			continue
		}

		if _, err := db.conn.ExecContext(ctx, m.SQL); err != nil {
			return fmt.Errorf("failed to execute migration v%d (%s): %w", m.Version, m.Name, err)
		}

		_, err := db.conn.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, name, description, applied_at) VALUES (?, ?, ?, ?)`,
			m.Version, m.Name, m.Description, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to record migration v%d: %w", m.Version, err)
		}

		newMigrations++
	}

	if newMigrations > 0 {
		logging.Info().Int("count", newMigrations).Msg("Applied database migrations")
	}
	return nil
}

// CurrentSchemaVersion returns the highest applied migration version
func (db *DB) CurrentSchemaVersion(ctx context.Context) (int, error) {
	var version int
	err := db.conn.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}
