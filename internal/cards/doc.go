// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

/*
Package cards builds the read-side view of the game library.

A game owned on several platforms is stored as one row per platform. A
GameCard collapses those rows: the priority row (Steam, then Xbox, then the
first row seen) supplies the name, recent playtime, last-played time and
achievement counts, while total playtime is summed across every row.

Cards are never persisted; they are rebuilt on every read (or served from
the API's TTL cache).
*/
package cards
