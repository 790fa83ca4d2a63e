// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package sync

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/questlog/internal/config"
	"github.com/tomtom215/questlog/internal/models"
	"github.com/tomtom215/questlog/internal/steam"
)

// TestSyncAgainstSteamClient runs a cycle through the real client so the
// no-stats and outage replies keep their distinct outcomes.
func TestSyncAgainstSteamClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		status          int
		body            string
		wantWithout     int
		wantFailures    int
		wantErrorPrefix string
	}{
		{
			name:        "no stats reply",
			status:      http.StatusBadRequest,
			body:        `{"playerstats":{"error":"Requested app has no stats","success":false}}`,
			wantWithout: 1,
		},
		{
			name:            "outage",
			status:          http.StatusServiceUnavailable,
			body:            `<html><body>Service Unavailable</body></html>`,
			wantFailures:    1,
			wantErrorPrefix: "Failed to fetch achievements for Portal 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch {
				case strings.Contains(r.URL.Path, "GetOwnedGames"):
					_, _ = w.Write([]byte(`{"response":{"games":[{"appid":620,"name":"Portal 2","playtime_forever":100,"playtime_2weeks":20}]}}`))
				case strings.Contains(r.URL.Path, "GetRecentlyPlayedGames"):
					_, _ = w.Write([]byte(`{"response":{"games":[]}}`))
				default:
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(tt.body))
				}
			}))
			defer server.Close()

			client := steam.NewClient(&config.SteamConfig{
				APIKey:  "test-key",
				UserID:  "76561198000000000",
				BaseURL: server.URL,
				Timeout: 5 * time.Second,
			})
			e, activity, _ := newTestEngine(steam.NewCircuitBreakerClient(client), &fakeStore{})

			result, err := e.SyncGamesAndAchievements(context.Background())
			if err != nil {
				t.Fatalf("SyncGamesAndAchievements() error = %v", err)
			}
			if result.GamesWithoutStats != tt.wantWithout || result.AchievementFailures != tt.wantFailures {
				t.Errorf("result = %+v, want %d without stats and %d failures", result, tt.wantWithout, tt.wantFailures)
			}

			errorLines := 0
			for _, l := range activity.Lines() {
				if l.Severity == models.SeverityError {
					errorLines++
					if !strings.HasPrefix(l.Message, tt.wantErrorPrefix) {
						t.Errorf("error line = %q, want prefix %q", l.Message, tt.wantErrorPrefix)
					}
				}
			}
			if want := tt.wantFailures; errorLines != want {
				t.Errorf("error lines = %d, want %d", errorLines, want)
			}
		})
	}
}
