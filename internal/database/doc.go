// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

/*
Package database provides the DuckDB-backed store for games, achievements and
the sync activity log.

# Tables

  - games: primary key (id, platform); name is written once by sync
  - achievements: primary key (game_id, game_platform, id)
  - logs: timestamp, severity (info|warn|error), message
  - schema_migrations: applied migration versions

# Query Shapes

The sync engine uses three statements:

  - SelectRecentSteamGames: Steam rows with playtime_recent > 0
  - UpsertGames: one multi-row INSERT ... ON CONFLICT (id, platform)
  - UpsertAchievements: one multi-row INSERT ... ON CONFLICT (game_id, game_platform, id)

The read path uses SelectGameCardRows (games LEFT JOIN achievements with
counts), SelectAchievements and ReadLogs.

No transaction spans a sync cycle. Each upsert commits on its own.

# Testing

Tests open ":memory:" databases through setupTestDB, which serializes DuckDB
use across the package's tests.
*/
package database
