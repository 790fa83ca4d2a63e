// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package sync

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/questlog/internal/models"
	"github.com/tomtom215/questlog/internal/steam"
)

func withStats(ids ...string) (map[string][]steam.PlayerAchievement, map[string][]steam.GlobalAchievement) {
	user := make(map[string][]steam.PlayerAchievement, len(ids))
	global := make(map[string][]steam.GlobalAchievement, len(ids))
	for _, id := range ids {
		user[id] = []steam.PlayerAchievement{
			{APIName: "ACH_1", Name: "First", Achieved: 1, UnlockTime: 1700000000},
			{APIName: "ACH_2", Name: "Second"},
		}
		global[id] = []steam.GlobalAchievement{{Name: "ACH_1", Percent: 50.5}, {Name: "ACH_2", Percent: 3.25}}
	}
	return user, global
}

func TestSyncNoGamesIsNoop(t *testing.T) {
	t.Parallel()

	store := &fakeStore{recent: []models.Game{dbGame("1", 100, 100)}}
	source := &fakeSource{games: []steam.GameRecord{apiGame(1, 100)}}
	e, activity, pauses := newTestEngine(source, store)

	result, err := e.SyncGamesAndAchievements(context.Background())
	if err != nil {
		t.Fatalf("SyncGamesAndAchievements() error = %v", err)
	}

	lines := activity.Lines()
	if len(lines) != 1 || lines[0].Severity != models.SeverityInfo || lines[0].Message != "No games to sync" {
		t.Errorf("activity = %+v, want one info line %q", lines, "No games to sync")
	}
	if store.writeCount() != 0 {
		t.Errorf("store writes = %d, want 0", store.writeCount())
	}
	if *pauses != 0 {
		t.Errorf("pauses = %d, want 0", *pauses)
	}
	if result.GamesWritten != 0 || result.AchievementsWritten != 0 {
		t.Errorf("result = %+v, want zero counts", result)
	}
}

func TestSyncWritesGamesAndAchievements(t *testing.T) {
	t.Parallel()

	user, global := withStats("10", "20")
	source := &fakeSource{
		games:  []steam.GameRecord{apiGame(10, 60), apiGame(20, 30)},
		user:   user,
		global: global,
	}
	store := &fakeStore{}
	e, activity, pauses := newTestEngine(source, store)

	result, err := e.SyncGamesAndAchievements(context.Background())
	if err != nil {
		t.Fatalf("SyncGamesAndAchievements() error = %v", err)
	}

	if len(store.gameWrites) != 1 || len(store.gameWrites[0]) != 2 {
		t.Fatalf("game writes = %v, want one batch of 2", store.gameWrites)
	}
	if len(store.achWrites["10"]) != 2 || len(store.achWrites["20"]) != 2 {
		t.Errorf("achievement writes = %v", store.achWrites)
	}
	if result.GamesWritten != 2 || result.AchievementsWritten != 4 {
		t.Errorf("result = %+v, want 2 games and 4 achievements", result)
	}
	// one after the game write plus one per achievement write
	if *pauses != 3 {
		t.Errorf("pauses = %d, want 3", *pauses)
	}

	lines := activity.Lines()
	wantMessages := []string{
		"Wrote 2 game(s): Game 10, Game 20",
		"Wrote 2 achievement(s) for Game 10",
		"Wrote 2 achievement(s) for Game 20",
	}
	if len(lines) != len(wantMessages) {
		t.Fatalf("activity = %+v, want %d lines", lines, len(wantMessages))
	}
	for i, want := range wantMessages {
		if lines[i].Message != want || lines[i].Severity != models.SeverityInfo {
			t.Errorf("line %d = %s %q, want info %q", i, lines[i].Severity, lines[i].Message, want)
		}
	}
}

func TestSyncGameWriteFailureAborts(t *testing.T) {
	t.Parallel()

	user, global := withStats("10")
	source := &fakeSource{games: []steam.GameRecord{apiGame(10, 60)}, user: user, global: global}
	store := &fakeStore{upsertGamesErr: errFake}
	e, activity, pauses := newTestEngine(source, store)

	result, err := e.SyncGamesAndAchievements(context.Background())
	if !errors.Is(err, errFake) {
		t.Fatalf("error = %v, want errFake", err)
	}
	if calls := source.achievementCalls(); len(calls) != 0 {
		t.Errorf("achievement fetches = %v, want none", calls)
	}
	if result.GamesWritten != 0 {
		t.Errorf("GamesWritten = %d, want 0", result.GamesWritten)
	}
	if *pauses != 0 {
		t.Errorf("pauses = %d, want 0", *pauses)
	}

	lines := activity.Lines()
	if len(lines) != 1 || lines[0].Severity != models.SeverityError {
		t.Fatalf("activity = %+v, want one error line", lines)
	}
	if !strings.Contains(lines[0].Message, "Game 10") || !strings.Contains(lines[0].Message, "aborting sync") {
		t.Errorf("error line = %q", lines[0].Message)
	}
}

func TestSyncAchievementWriteFailureContinues(t *testing.T) {
	t.Parallel()

	user, global := withStats("1", "2", "3")
	source := &fakeSource{
		games:  []steam.GameRecord{apiGame(1, 10), apiGame(2, 20), apiGame(3, 30)},
		user:   user,
		global: global,
	}
	store := &fakeStore{achErr: map[string]error{"2": errFake}}
	e, activity, pauses := newTestEngine(source, store)

	result, err := e.SyncGamesAndAchievements(context.Background())
	if err != nil {
		t.Fatalf("SyncGamesAndAchievements() error = %v, want nil", err)
	}

	if _, ok := store.achWrites["3"]; !ok {
		t.Error("game 3 achievements not written after game 2 failed")
	}
	if _, ok := store.achWrites["2"]; ok {
		t.Error("game 2 achievements recorded despite failure")
	}
	if result.AchievementFailures != 1 || result.AchievementsWritten != 4 {
		t.Errorf("result = %+v, want 1 failure and 4 achievements", result)
	}
	if *pauses != 4 {
		t.Errorf("pauses = %d, want 4", *pauses)
	}
	if n := countSeverity(activity.Lines(), models.SeverityError); n != 1 {
		t.Errorf("error lines = %d, want 1", n)
	}
}

func TestSyncGameWithoutStats(t *testing.T) {
	t.Parallel()

	source := &fakeSource{games: []steam.GameRecord{apiGame(5, 15)}}
	store := &fakeStore{}
	e, activity, pauses := newTestEngine(source, store)

	result, err := e.SyncGamesAndAchievements(context.Background())
	if err != nil {
		t.Fatalf("SyncGamesAndAchievements() error = %v", err)
	}
	if result.GamesWithoutStats != 1 || result.AchievementFailures != 0 {
		t.Errorf("result = %+v, want 1 game without stats", result)
	}
	if len(store.achCalls) != 0 {
		t.Errorf("achievement writes = %v, want none", store.achCalls)
	}
	if *pauses != 1 {
		t.Errorf("pauses = %d, want 1", *pauses)
	}

	lines := activity.Lines()
	last := lines[len(lines)-1]
	if last.Severity != models.SeverityInfo || last.Message != "No achievements to sync for Game 5" {
		t.Errorf("last line = %s %q", last.Severity, last.Message)
	}
}

func TestSyncAchievementFetchFailure(t *testing.T) {
	t.Parallel()

	user, global := withStats("1", "2")
	source := &fakeSource{
		games:     []steam.GameRecord{apiGame(1, 10), apiGame(2, 20)},
		user:      user,
		global:    global,
		globalErr: map[string]error{"1": errFake},
	}
	store := &fakeStore{}
	e, activity, pauses := newTestEngine(source, store)

	result, err := e.SyncGamesAndAchievements(context.Background())
	if err != nil {
		t.Fatalf("SyncGamesAndAchievements() error = %v", err)
	}
	if result.AchievementFailures != 1 || result.AchievementsWritten != 2 {
		t.Errorf("result = %+v", result)
	}
	if *pauses != 3 {
		t.Errorf("pauses = %d, want 3", *pauses)
	}

	var found bool
	for _, l := range activity.Lines() {
		if l.Severity == models.SeverityError && strings.HasPrefix(l.Message, "Failed to fetch achievements for Game 1") {
			found = true
		}
	}
	if !found {
		t.Errorf("no fetch failure line in %+v", activity.Lines())
	}
}

func TestSyncEmptyUserAchievementsSkipsGlobal(t *testing.T) {
	t.Parallel()

	source := &fakeSource{
		games:     []steam.GameRecord{apiGame(1, 10)},
		user:      map[string][]steam.PlayerAchievement{"1": {}},
		globalErr: map[string]error{"1": errFake},
	}
	e, _, _ := newTestEngine(source, &fakeStore{})

	result, err := e.SyncGamesAndAchievements(context.Background())
	if err != nil {
		t.Fatalf("SyncGamesAndAchievements() error = %v", err)
	}
	if result.AchievementFailures != 0 || result.GamesWithoutStats != 0 {
		t.Errorf("result = %+v, want no failures", result)
	}
}

func TestSyncDiffFailure(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	e, activity, _ := newTestEngine(&fakeSource{gamesErr: errFake}, store)

	if _, err := e.SyncGamesAndAchievements(context.Background()); !errors.Is(err, errFake) {
		t.Fatalf("error = %v, want errFake", err)
	}
	if store.writeCount() != 0 {
		t.Errorf("store writes = %d, want 0", store.writeCount())
	}
	if n := countSeverity(activity.Lines(), models.SeverityError); n != 1 {
		t.Errorf("error lines = %d, want 1", n)
	}
}

func TestSyncExcludedGamesNeverWritten(t *testing.T) {
	t.Parallel()

	source := &fakeSource{games: []steam.GameRecord{apiGame(218620, 60)}}
	store := &fakeStore{}
	e, activity, _ := newTestEngine(source, store, "218620")

	if _, err := e.SyncGamesAndAchievements(context.Background()); err != nil {
		t.Fatalf("SyncGamesAndAchievements() error = %v", err)
	}
	if store.writeCount() != 0 {
		t.Errorf("store writes = %d, want 0", store.writeCount())
	}
	if lines := activity.Lines(); len(lines) != 1 || lines[0].Message != "No games to sync" {
		t.Errorf("activity = %+v", lines)
	}
}

func TestSyncCanceledDuringPause(t *testing.T) {
	t.Parallel()

	user, global := withStats("1")
	source := &fakeSource{games: []steam.GameRecord{apiGame(1, 10)}, user: user, global: global}
	store := &fakeStore{}
	e, _, _ := newTestEngine(source, store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := e.SyncGamesAndAchievements(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if result.GamesWritten != 1 {
		t.Errorf("GamesWritten = %d, want 1", result.GamesWritten)
	}
	if calls := source.achievementCalls(); len(calls) != 0 {
		t.Errorf("achievement fetches after cancel = %v", calls)
	}
}

func TestSleepContext(t *testing.T) {
	t.Parallel()

	if err := sleepContext(context.Background(), time.Millisecond); err != nil {
		t.Errorf("sleepContext() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	if err := sleepContext(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("sleepContext(canceled) error = %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("sleepContext did not return on cancel")
	}
}

func TestNewEngineDefaultPause(t *testing.T) {
	t.Parallel()

	e := NewEngine(&fakeSource{}, &fakeStore{}, &MemoryActivityLog{}, EngineConfig{})
	if e.pause != DefaultRateLimitPause {
		t.Errorf("pause = %v, want %v", e.pause, DefaultRateLimitPause)
	}
	e = NewEngine(&fakeSource{}, &fakeStore{}, &MemoryActivityLog{}, EngineConfig{RateLimitPause: 5 * time.Millisecond})
	if e.pause != 5*time.Millisecond {
		t.Errorf("pause = %v, want 5ms", e.pause)
	}
}
