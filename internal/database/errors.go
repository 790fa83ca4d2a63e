// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package database

import (
	"errors"
	"io"

	"github.com/tomtom215/questlog/internal/logging"
)

var (
	// ErrGameNotFound is returned when a game (or the parent of an achievement write) does not exist.
	ErrGameNotFound = errors.New("game not found")

	// ErrSyncedPlatform is returned when a manual write targets the synced platform.
	ErrSyncedPlatform = errors.New("platform is managed by sync and cannot be edited manually")

	// ErrInvalidPlatform is returned for platforms outside the known set.
	ErrInvalidPlatform = errors.New("invalid platform")

	// ErrInvalidSeverity is returned when a log line carries an unknown severity.
	ErrInvalidSeverity = errors.New("invalid log severity")
)

// closeWithLog closes a resource and logs any error
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
