// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

/*
Package main is the entry point for the Questlog server.

Questlog keeps a per-platform record of game playtime and achievements.
Steam is reconciled from the Steam Web API by a sync cycle. Xbox and Switch
records are entered by hand through the API.

Startup order:

 1. Configuration: koanf defaults, optional YAML file, environment
 2. Logging: zerolog
 3. Database: DuckDB schema migrations
 4. Steam client behind a circuit breaker
 5. Sync engine, activity log, and manager
 6. Bearer auth for the cron and write endpoints
 7. HTTP API
 8. Supervisor tree: checkpoint, sync loop, HTTP server

The process stops on SIGINT or SIGTERM after the supervisor tree has shut
down every service.
*/
package main
