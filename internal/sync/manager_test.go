// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package sync

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/questlog/internal/config"
	"github.com/tomtom215/questlog/internal/models"
)

// fakeSyncer returns canned results and can block until released.
type fakeSyncer struct {
	result  models.SyncResult
	err     error
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (f *fakeSyncer) SyncGamesAndAchievements(ctx context.Context) (models.SyncResult, error) {
	f.calls.Add(1)
	if f.started != nil {
		select {
		case f.started <- struct{}{}:
		default:
		}
	}
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return f.result, ctx.Err()
		}
	}
	return f.result, f.err
}

func TestTriggerSyncRecordsResult(t *testing.T) {
	t.Parallel()

	syncer := &fakeSyncer{result: models.SyncResult{GamesWritten: 2, AchievementsWritten: 7}}
	m := NewManager(syncer, &config.SyncConfig{})

	var callbackResult models.SyncResult
	m.SetOnSyncCompleted(func(r models.SyncResult) { callbackResult = r })

	before := time.Now()
	result, err := m.TriggerSync(context.Background())
	if err != nil {
		t.Fatalf("TriggerSync() error = %v", err)
	}
	if result.GamesWritten != 2 {
		t.Errorf("GamesWritten = %d, want 2", result.GamesWritten)
	}
	if callbackResult.AchievementsWritten != 7 {
		t.Errorf("callback result = %+v", callbackResult)
	}
	if m.LastSyncTime().Before(before) {
		t.Errorf("LastSyncTime() = %v, want after %v", m.LastSyncTime(), before)
	}
	if m.LastResult().GamesWritten != 2 {
		t.Errorf("LastResult() = %+v", m.LastResult())
	}
}

func TestTriggerSyncFailureKeepsLastSync(t *testing.T) {
	t.Parallel()

	syncer := &fakeSyncer{err: errFake}
	m := NewManager(syncer, &config.SyncConfig{})

	called := false
	m.SetOnSyncCompleted(func(models.SyncResult) { called = true })

	if _, err := m.TriggerSync(context.Background()); !errors.Is(err, errFake) {
		t.Fatalf("TriggerSync() error = %v, want errFake", err)
	}
	if !m.LastSyncTime().IsZero() {
		t.Errorf("LastSyncTime() = %v, want zero", m.LastSyncTime())
	}
	if called {
		t.Error("callback fired for a cycle that wrote nothing")
	}
}

func TestTriggerSyncRejectsConcurrentCycle(t *testing.T) {
	t.Parallel()

	syncer := &fakeSyncer{started: make(chan struct{}, 1), release: make(chan struct{})}
	m := NewManager(syncer, &config.SyncConfig{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := m.TriggerSync(context.Background()); err != nil {
			t.Errorf("first TriggerSync() error = %v", err)
		}
	}()

	<-syncer.started
	if _, err := m.TriggerSync(context.Background()); !errors.Is(err, ErrSyncInProgress) {
		t.Errorf("second TriggerSync() error = %v, want ErrSyncInProgress", err)
	}
	close(syncer.release)
	wg.Wait()

	if n := syncer.calls.Load(); n != 1 {
		t.Errorf("engine calls = %d, want 1", n)
	}
}

func TestManagerStartStop(t *testing.T) {
	t.Parallel()

	syncer := &fakeSyncer{started: make(chan struct{}, 8)}
	m := NewManager(syncer, &config.SyncConfig{
		Enabled:      true,
		Interval:     time.Hour,
		RunOnStartup: true,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := m.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := m.Start(ctx); err == nil {
		t.Error("second Start() error = nil, want already running")
	}

	select {
	case <-syncer.started:
	case <-time.After(5 * time.Second):
		t.Fatal("startup cycle did not run")
	}

	if err := m.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if err := m.Stop(); err == nil {
		t.Error("second Stop() error = nil, want not running")
	}
	if n := syncer.calls.Load(); n != 1 {
		t.Errorf("engine calls = %d, want 1", n)
	}
}

func TestManagerTicks(t *testing.T) {
	t.Parallel()

	syncer := &fakeSyncer{started: make(chan struct{}, 8)}
	m := NewManager(syncer, &config.SyncConfig{Enabled: true, Interval: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := m.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer func() { _ = m.Stop() }()

	for i := 0; i < 2; i++ {
		select {
		case <-syncer.started:
		case <-time.After(5 * time.Second):
			t.Fatalf("tick %d did not run", i+1)
		}
	}
}

func TestManagerDisabledRunsNoLoop(t *testing.T) {
	t.Parallel()

	syncer := &fakeSyncer{}
	m := NewManager(syncer, &config.SyncConfig{Enabled: false, Interval: time.Millisecond, RunOnStartup: true})

	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := m.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if n := syncer.calls.Load(); n != 0 {
		t.Errorf("engine calls = %d, want 0", n)
	}

	if _, err := m.TriggerSync(context.Background()); err != nil {
		t.Errorf("manual TriggerSync() error = %v", err)
	}
}
