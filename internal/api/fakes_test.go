// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/questlog/internal/auth"
	"github.com/tomtom215/questlog/internal/models"
)

const testSecret = "cron-s3cret"

var errFake = errors.New("fake failure")

type fakeStore struct {
	mu          sync.Mutex
	rows        []models.GameCardRow
	achs        map[string][]models.Achievement
	logs        []models.LogLine
	pingErr     error
	rowsErr     error
	upsertErr   error
	achsErr     error
	rowCalls    int
	logLimit    int
	manualSaved []models.Game
	achsSaved   []models.Achievement

	// onRows runs after each card query, before the result is returned.
	onRows func()
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

func (f *fakeStore) SelectGameCardRows(_ context.Context, gameID string) ([]models.GameCardRow, error) {
	f.mu.Lock()
	f.rowCalls++
	rows, rowsErr, hook := f.rows, f.rowsErr, f.onRows
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if rowsErr != nil {
		return nil, rowsErr
	}
	var out []models.GameCardRow
	for _, r := range rows {
		if gameID == "" || r.ID == gameID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) SelectAchievements(_ context.Context, gameID string, platform models.Platform) ([]models.Achievement, error) {
	out := []models.Achievement{}
	for _, a := range f.achs[gameID] {
		if a.GamePlatform == platform {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeStore) ReadLogs(_ context.Context, limit int) ([]models.LogLine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logLimit = limit
	return f.logs, nil
}

func (f *fakeStore) UpsertManualGame(_ context.Context, game *models.Game) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.manualSaved = append(f.manualSaved, *game)
	return nil
}

func (f *fakeStore) UpsertAchievements(_ context.Context, _ string, _ models.Platform, achs []models.Achievement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.achsErr != nil {
		return f.achsErr
	}
	f.achsSaved = append(f.achsSaved, achs...)
	return nil
}

func (f *fakeStore) cardQueries() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rowCalls
}

type fakeTrigger struct {
	mu       sync.Mutex
	result   models.SyncResult
	err      error
	calls    int
	ctxErr   error
	lastSync time.Time
}

func (f *fakeTrigger) TriggerSync(ctx context.Context) (models.SyncResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.ctxErr = ctx.Err()
	return f.result, f.err
}

func (f *fakeTrigger) LastSyncTime() time.Time       { return f.lastSync }
func (f *fakeTrigger) LastResult() models.SyncResult { return f.result }

func (f *fakeTrigger) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeBreaker string

func (b fakeBreaker) State() string { return string(b) }

func ptrTime(unix int64) *time.Time {
	t := time.Unix(unix, 0).UTC()
	return &t
}

// sampleRows holds Portal 2 on Steam and Xbox plus Celeste on Switch.
func sampleRows() []models.GameCardRow {
	return []models.GameCardRow{
		{Game: models.Game{ID: "620", Platform: models.PlatformSteam, Name: "Portal 2", PlaytimeTotal: 300, PlaytimeRecent: 20, TimeLastPlayed: ptrTime(1748199600)},
			TotalAchievements: 3, CompletedAchievements: 1},
		{Game: models.Game{ID: "620", Platform: models.PlatformXbox, Name: "Portal 2 (Xbox)", PlaytimeTotal: 100}},
		{Game: models.Game{ID: "504230", Platform: models.PlatformSwitch, Name: "Celeste", PlaytimeTotal: 900, PlaytimeRecent: 90}},
	}
}

func sampleAchievements() map[string][]models.Achievement {
	return map[string][]models.Achievement{
		"620": {
			{GameID: "620", GamePlatform: models.PlatformSteam, ID: "A", Name: "Alpha", GlobalCompletion: 10},
			{GameID: "620", GamePlatform: models.PlatformSteam, ID: "B", Name: "Beta", GlobalCompletion: 80, Completed: true, CompletedTime: ptrTime(1700000000)},
			{GameID: "620", GamePlatform: models.PlatformSteam, ID: "C", Name: "Gamma", GlobalCompletion: 45},
		},
	}
}

type testServer struct {
	handler *Handler
	http    http.Handler
	store   *fakeStore
	trigger *fakeTrigger
}

func newTestServer(t *testing.T, store *fakeStore, trigger *fakeTrigger, breaker BreakerReporter) *testServer {
	t.Helper()

	h, router := newRouter(t, store, trigger, breaker)
	return &testServer{handler: h, http: router, store: store, trigger: trigger}
}

// newRouter builds the full middleware chain around any Store.
func newRouter(t *testing.T, store Store, trigger SyncTrigger, breaker BreakerReporter) (*Handler, http.Handler) {
	t.Helper()

	guard, err := auth.NewBearerAuth(testSecret, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewBearerAuth() error = %v", err)
	}
	h := NewHandler(store, trigger, breaker, time.Minute)
	t.Cleanup(h.Close)

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	router := NewRouter(h, NewChiMiddleware(cfg), guard)
	return h, router.SetupChi()
}

func (s *testServer) do(method, target, body string, authorized bool) *httptest.ResponseRecorder {
	return serve(s.http, method, target, body, authorized)
}

func serve(h http.Handler, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testSecret)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, data interface{}) testEnvelope {
	t.Helper()

	var env testEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, w.Body.String())
	}
	if data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
	return env
}
