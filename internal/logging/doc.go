// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

// Package logging provides the process-wide zerolog logger for Questlog.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("games", n).Msg("Sync finished")
//	logging.Error().Err(err).Str("game_id", id).Msg("Achievement upsert failed")
//	logging.Ctx(ctx).Debug().Msg("Request handled")
//
// Always terminate log chains with .Msg() or .Send(); an unterminated
// event is never written.
//
// The sync activity log (the severity-tagged lines persisted to the logs
// table) is a separate concern owned by package sync. Its DB-backed writer
// mirrors every line here.
package logging
