// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package api

import "net/http"

// Logs returns the newest activity log lines first.
func (h *Handler) Logs(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, ok := getIntParam(r, "limit", defaultLogsLimit)
	if !ok {
		rw.BadRequest("limit must be an integer")
		return
	}
	req := LogsRequest{Limit: limit}
	if !validate(rw, &req) {
		return
	}

	lines, err := h.store.ReadLogs(r.Context(), req.Limit)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	count := len(lines)
	rw.SuccessWithMeta(lines, &APIMeta{Count: &count})
}
