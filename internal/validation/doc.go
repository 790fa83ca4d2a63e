// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

/*
Package validation validates HTTP request structs with go-playground/validator v10.

A single validator instance is built lazily and shared; it caches struct
metadata, so reuse is cheap and safe across goroutines.

Custom tags:

  - platform: a known platform (Steam, Xbox, Switch)
  - manual_platform: a platform entered by hand (Xbox, Switch)

Field names in messages use the query or json tag, so a failing
`query:"sort"` field reports as "sort".

Example:

	type GamesRequest struct {
	    Sort     string `query:"sort" validate:"omitempty,oneof=name playtime lastPlayed completion"`
	    Platform string `query:"platform" validate:"omitempty,platform"`
	}

	if err := validation.ValidateStruct(&req); err != nil {
	    apiErr := err.ToAPIError()
	    // render apiErr.Code / apiErr.Message with status 400
	}
*/
package validation
