// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package sync

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tomtom215/questlog/internal/models"
	"github.com/tomtom215/questlog/internal/steam"
)

var errFake = errors.New("fake failure")

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

// fakeSource is an in-memory Source.
type fakeSource struct {
	mu        sync.Mutex
	games     []steam.GameRecord
	gamesErr  error
	user      map[string][]steam.PlayerAchievement
	userErr   map[string]error
	global    map[string][]steam.GlobalAchievement
	globalErr map[string]error
	userCalls []string
}

func (f *fakeSource) RecentlyActiveGames(_ context.Context) ([]steam.GameRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gamesErr != nil {
		return nil, f.gamesErr
	}
	out := make([]steam.GameRecord, len(f.games))
	copy(out, f.games)
	return out, nil
}

func (f *fakeSource) GetPlayerAchievements(_ context.Context, appID string) ([]steam.PlayerAchievement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userCalls = append(f.userCalls, appID)
	if err := f.userErr[appID]; err != nil {
		return nil, err
	}
	achs, ok := f.user[appID]
	if !ok {
		return nil, steam.ErrNoStats
	}
	return achs, nil
}

func (f *fakeSource) GetGlobalAchievementPercentages(_ context.Context, appID string) ([]steam.GlobalAchievement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.globalErr[appID]; err != nil {
		return nil, err
	}
	return f.global[appID], nil
}

func (f *fakeSource) achievementCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.userCalls...)
}

// fakeStore is an in-memory Store that records every write.
type fakeStore struct {
	mu             sync.Mutex
	recent         []models.Game
	selectErr      error
	upsertGamesErr error
	achErr         map[string]error

	gameWrites [][]models.Game
	achWrites  map[string][]models.Achievement
	achCalls   []string
}

func (f *fakeStore) SelectRecentSteamGames(_ context.Context) ([]models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	return append([]models.Game(nil), f.recent...), nil
}

func (f *fakeStore) UpsertGames(_ context.Context, games []models.Game) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertGamesErr != nil {
		return f.upsertGamesErr
	}
	f.gameWrites = append(f.gameWrites, append([]models.Game(nil), games...))
	return nil
}

func (f *fakeStore) UpsertAchievements(_ context.Context, gameID string, _ models.Platform, achievements []models.Achievement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.achCalls = append(f.achCalls, gameID)
	if err := f.achErr[gameID]; err != nil {
		return err
	}
	if f.achWrites == nil {
		f.achWrites = make(map[string][]models.Achievement)
	}
	f.achWrites[gameID] = achievements
	return nil
}

func (f *fakeStore) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.gameWrites) + len(f.achCalls)
}

// newTestEngine builds an Engine that records pauses instead of sleeping.
func newTestEngine(source Source, store Store, excluded ...string) (*Engine, *MemoryActivityLog, *int) {
	activity := &MemoryActivityLog{}
	e := NewEngine(source, store, activity, EngineConfig{ExcludedAppIDs: excluded})
	pauses := new(int)
	e.sleep = func(ctx context.Context, d time.Duration) error {
		*pauses++
		return ctx.Err()
	}
	return e, activity, pauses
}

func countSeverity(lines []models.LogLine, severity models.Severity) int {
	n := 0
	for _, l := range lines {
		if l.Severity == severity {
			n++
		}
	}
	return n
}
