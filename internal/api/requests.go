// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package api

import (
	"net/http"
	"strconv"

	"github.com/tomtom215/questlog/internal/validation"
)

// GamesRequest is the query for GET /api/v1/games.
type GamesRequest struct {
	Sort     string `query:"sort" validate:"omitempty,oneof=name playtime lastPlayed completion"`
	Platform string `query:"platform" validate:"omitempty,platform"`
	Query    string `query:"q" validate:"max=200"`
}

// GameDetailRequest is the path and query for GET /api/v1/games/{id}.
type GameDetailRequest struct {
	ID   string `query:"id" validate:"required,max=64"`
	Sort string `query:"sort" validate:"omitempty,oneof=name completedTime globalCompletion"`
}

// LogsRequest is the query for GET /api/v1/logs.
type LogsRequest struct {
	Limit int `query:"limit" validate:"min=1,max=1000"`
}

// defaultLogsLimit applies when the limit parameter is absent.
const defaultLogsLimit = 100

// maxRequestBodySize caps JSON request bodies.
const maxRequestBodySize = 1 << 20

// getIntParam parses an integer query parameter. ok is false when the
// parameter is present but not an integer.
func getIntParam(r *http.Request, name string, defaultValue int) (value int, ok bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// validate runs struct validation and writes a 400 on failure.
// It reports whether the request may proceed.
func validate(rw *ResponseWriter, req interface{}) bool {
	verr := validation.ValidateStruct(req)
	if verr == nil {
		return true
	}
	apiErr := verr.ToAPIError()
	rw.ValidationError(apiErr.Message, apiErr.Details)
	return false
}
