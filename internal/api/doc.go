// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

/*
Package api provides the HTTP layer for Questlog.

Routes:

	GET  /api/cron               scheduler trigger, bearer auth, plain text
	GET  /api/v1/health          database, breaker and last sync status
	GET  /api/v1/health/live     liveness probe
	GET  /api/v1/games           game cards (sort, platform, q)
	GET  /api/v1/games/{id}      one card with achievements (sort)
	GET  /api/v1/logs            sync activity log, newest first (limit)
	POST /api/v1/sync            bearer auth, runs a sync cycle
	POST /api/v1/games/manual    bearer auth, upserts a hand-entered game
	GET  /metrics                Prometheus exposition

JSON endpoints answer with the APIResponse envelope. The cron endpoint
answers 401 "Unauthorized" or 200 with a one-line summary; cycle details
are written to the activity log.

The unfiltered card list is cached in memory and dropped whenever a sync
cycle writes games or a manual game is saved.
*/
package api
