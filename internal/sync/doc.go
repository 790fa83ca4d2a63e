// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

/*
Package sync reconciles Steam's recent activity with the local store.

One cycle:

 1. Diff: Steam's recently active games are compared with stored Steam rows
    that have recent playtime. Changed or new games are normalized; stored
    games that dropped out of Steam's two-week window get recent playtime 0.
 2. Game write: all diffed games are upserted in one statement. A failure
    aborts the cycle.
 3. Achievements: for each game in turn, player and global achievements are
    fetched, joined and upserted. Failures are logged per game and the loop
    continues. A fixed pause follows the game write and each achievement write.

Every outcome is written to an ActivityLog, which the HTTP API exposes as the
sync log.

Key Components:

  - Engine: the pipeline (ComputeGamesToSync, SyncGamesAndAchievements)
  - NormalizeGame / NormalizeAchievements: Steam payloads to store records
  - Manager: daily schedule plus manual triggers, one cycle at a time
  - DBActivityLog: ActivityLog persisted to the logs table and mirrored to zerolog
*/
package sync
