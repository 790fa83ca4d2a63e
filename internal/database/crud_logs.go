// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/questlog/internal/models"
)

// DefaultLogLimit caps ReadLogs when the caller passes a non-positive limit.
const DefaultLogLimit = 500

// WriteLog appends one sync activity line.
func (db *DB) WriteLog(ctx context.Context, severity models.Severity, message string) error {
	if !severity.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSeverity, severity)
	}

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO logs (timestamp, severity, message) VALUES (?, ?, ?)`,
		time.Now().UTC(), string(severity), message)
	if err != nil {
		return fmt.Errorf("failed to write log line: %w", err)
	}
	return nil
}

// ReadLogs returns up to limit log lines, newest first.
func (db *DB) ReadLogs(ctx context.Context, limit int) ([]models.LogLine, error) {
	if limit <= 0 {
		limit = DefaultLogLimit
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT timestamp, severity, message FROM logs ORDER BY timestamp DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}
	defer closeQuietly(rows)

	lines := []models.LogLine{}
	for rows.Next() {
		var l models.LogLine
		var severity string
		if err := rows.Scan(&l.Timestamp, &severity, &l.Message); err != nil {
			return nil, fmt.Errorf("failed to scan log line: %w", err)
		}
		l.Severity = models.Severity(severity)
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate logs: %w", err)
	}
	return lines, nil
}
