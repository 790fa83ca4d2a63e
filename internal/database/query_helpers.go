// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// buildInsertPlaceholders returns "(?, ?), (?, ?)" for rows x cols parameters.
func buildInsertPlaceholders(rows, cols int) (string, error) {
	if rows < 1 || cols < 1 {
		return "", fmt.Errorf("cannot build placeholders for %d rows of %d columns", rows, cols)
	}

	row := "(" + strings.TrimSuffix(strings.Repeat("?, ", cols), ", ") + ")"

	var b strings.Builder
	b.Grow(rows * (len(row) + 2))
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(row)
	}
	return b.String(), nil
}

// nullableTime converts an optional time into a driver value.
func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC()
}

// timePtr converts a scanned nullable time into an optional time.
func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.UTC()
	return &t
}
