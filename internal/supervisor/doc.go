// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

/*
Package supervisor runs Questlog's long-lived services under a suture v4
supervisor tree.

	questlog (root)
	├── data-layer   checkpoint service
	├── sync-layer   scheduled sync loop
	└── api-layer    HTTP server

A service that returns an error or panics is restarted with suture's
backoff. Supervisor events are logged through sutureslog over the zerolog
slog adapter.

Package services holds the suture.Service wrappers.
*/
package supervisor
