// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

/*
Package models defines the data structures shared by the store, the sync
engine, the card aggregator and the HTTP API.

Persisted records:

  - Game: one row per (ID, Platform)
  - Achievement: one row per (GameID, GamePlatform, ID)
  - LogLine: severity-tagged sync activity

Derived, never persisted:

  - GameCard: all platform records for one game ID collapsed into one view
  - GameDetail: a card plus its priority platform's achievements

Platform priority lives in PlatformPriority. Adding a platform to the
ordering is a one-line change there; every consumer goes through
ComparePlatformPriority.
*/
package models
