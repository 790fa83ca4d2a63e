// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

// Package services adapts Questlog components to suture.Service.
//
// Each wrapper turns a Start/Stop or ListenAndServe/Shutdown lifecycle into
// a context-driven Serve and implements fmt.Stringer so suture logs a
// readable name.
package services
