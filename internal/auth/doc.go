// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

/*
Package auth guards the write endpoints with a single shared bearer secret.

The secret (CRON_SECRET) is hashed once at startup, SHA-256 then bcrypt, and
presented tokens are checked against that hash. Routes that mutate state
(the cron trigger, manual sync and manual game entry) sit behind
BearerAuth.Middleware; read routes are open.

Usage:

	guard, err := auth.NewBearerAuth(cfg.Security.CronSecret, bcrypt.DefaultCost)
	if err != nil {
	    return err
	}
	r.With(guard.Middleware(unauthorized)).Get("/api/cron", handler.Cron)
*/
package auth
