// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/questlog/internal/logging"
	intsync "github.com/tomtom215/questlog/internal/sync"
)

// Cron runs one sync cycle for the scheduler and answers in plain text.
// The cycle is detached from the request so a dropped connection does not
// abort writes half way through. Details go to the activity log.
func (h *Handler) Cron(w http.ResponseWriter, r *http.Request) {
	ctx := context.WithoutCancel(r.Context())

	result, err := h.sync.TriggerSync(ctx)
	switch {
	case errors.Is(err, intsync.ErrSyncInProgress):
		logging.Ctx(ctx).Info().Msg("Cron skipped, sync already in progress")
		writePlainText(w, http.StatusOK, "cron completed: 0 game(s) written, sync already in progress")
		return
	case err != nil:
		logging.Ctx(ctx).Warn().Err(err).Int("games", result.GamesWritten).Msg("Cron sync ended with error")
	}

	writePlainText(w, http.StatusOK,
		fmt.Sprintf("cron completed: %d game(s) written, see logs for details", result.GamesWritten))
}

// TriggerSync runs one sync cycle and returns its result as JSON.
func (h *Handler) TriggerSync(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	ctx := context.WithoutCancel(r.Context())

	result, err := h.sync.TriggerSync(ctx)
	if errors.Is(err, intsync.ErrSyncInProgress) {
		rw.Conflict("Sync already in progress")
		return
	}
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Manual sync failed")
		rw.ErrorWithDetails(http.StatusInternalServerError, ErrCodeSyncFailed, err.Error(), result)
		return
	}
	rw.Success(result)
}

// unauthorizedText is the cron endpoint's rejection.
func unauthorizedText(w http.ResponseWriter, _ *http.Request) {
	writePlainText(w, http.StatusUnauthorized, "Unauthorized")
}

// unauthorizedJSON is the JSON API's rejection.
func unauthorizedJSON(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Unauthorized("Missing or invalid bearer token")
}
