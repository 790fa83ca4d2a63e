// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

// Package middleware holds the HTTP middleware shared by every route:
// request ID propagation into the logging context and Prometheus request
// metrics. Both are plain func(http.Handler) http.Handler and plug into chi.
package middleware
