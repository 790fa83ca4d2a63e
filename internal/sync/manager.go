// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package sync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/questlog/internal/config"
	"github.com/tomtom215/questlog/internal/logging"
	"github.com/tomtom215/questlog/internal/models"
)

// DefaultInterval is used when SyncConfig.Interval is not positive.
const DefaultInterval = 24 * time.Hour

// ErrSyncInProgress is returned by TriggerSync while another cycle runs.
var ErrSyncInProgress = errors.New("sync already in progress")

// Syncer runs one sync cycle. Implemented by *Engine.
type Syncer interface {
	SyncGamesAndAchievements(ctx context.Context) (models.SyncResult, error)
}

// Manager schedules sync cycles and serializes them with manual triggers.
//
// Thread Safety:
//   - syncMu: at most one cycle runs at a time
//   - mu: protects running, lastSync, lastResult and the callback
type Manager struct {
	engine Syncer
	cfg    *config.SyncConfig

	mu              sync.RWMutex
	syncMu          sync.Mutex
	running         bool
	lastSync        time.Time
	lastResult      models.SyncResult
	onSyncCompleted func(result models.SyncResult)
	stopChan        chan struct{}
	wg              sync.WaitGroup
}

// NewManager creates a sync manager.
func NewManager(engine Syncer, cfg *config.SyncConfig) *Manager {
	logging.Info().
		Bool("enabled", cfg.Enabled).
		Dur("interval", cfg.Interval).
		Bool("run_on_startup", cfg.RunOnStartup).
		Dur("rate_limit_pause", cfg.RateLimitPause).
		Msg("Sync manager config loaded")

	return &Manager{
		engine: engine,
		cfg:    cfg,
	}
}

// SetOnSyncCompleted registers a callback invoked after each cycle that
// wrote at least one game, including cycles that later aborted.
func (m *Manager) SetOnSyncCompleted(callback func(result models.SyncResult)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onSyncCompleted = callback
}

// Start begins the periodic sync loop. With sync disabled only manual
// triggers run.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return fmt.Errorf("sync manager is already running")
	}
	m.running = true
	stop := make(chan struct{})
	m.stopChan = stop
	m.mu.Unlock()

	if !m.cfg.Enabled {
		logging.Info().Msg("Scheduled sync disabled (SYNC_ENABLED=false) - manual triggers only")
		return nil
	}

	interval := m.cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	m.wg.Add(1)
	go m.syncLoop(ctx, interval, stop)
	logging.Info().Dur("interval", interval).Msg("Sync manager started")
	return nil
}

// Stop ends the sync loop and waits for an in-flight scheduled cycle.
func (m *Manager) Stop() error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return fmt.Errorf("sync manager is not running")
	}
	m.running = false
	close(m.stopChan)
	m.mu.Unlock()

	m.wg.Wait()
	logging.Info().Msg("Sync manager stopped")
	return nil
}

func (m *Manager) syncLoop(ctx context.Context, interval time.Duration, stop <-chan struct{}) {
	defer m.wg.Done()

	if m.cfg.RunOnStartup {
		m.runScheduled(ctx)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			m.runScheduled(ctx)
		}
	}
}

func (m *Manager) runScheduled(ctx context.Context) {
	if _, err := m.TriggerSync(ctx); err != nil {
		if errors.Is(err, ErrSyncInProgress) {
			logging.Info().Msg("Skipping scheduled sync, another sync is running")
			return
		}
		logging.Error().Err(err).Msg("Scheduled sync failed")
	}
}

// TriggerSync runs one cycle now. It returns ErrSyncInProgress without
// waiting if a cycle is already running.
func (m *Manager) TriggerSync(ctx context.Context) (models.SyncResult, error) {
	if !m.syncMu.TryLock() {
		return models.SyncResult{}, ErrSyncInProgress
	}
	defer m.syncMu.Unlock()

	ctx = logging.ContextWithNewCorrelationID(ctx)
	logging.Ctx(ctx).Info().Msg("Sync cycle starting")

	result, err := m.engine.SyncGamesAndAchievements(ctx)

	m.mu.Lock()
	m.lastResult = result
	if err == nil {
		m.lastSync = time.Now()
	}
	callback := m.onSyncCompleted
	m.mu.Unlock()

	if result.GamesWritten > 0 && callback != nil {
		callback(result)
	}

	logging.Ctx(ctx).Info().
		Int("games_written", result.GamesWritten).
		Int("achievements_written", result.AchievementsWritten).
		Int("games_without_stats", result.GamesWithoutStats).
		Int("achievement_failures", result.AchievementFailures).
		Dur("duration", result.Duration).
		AnErr("error", err).
		Msg("Sync cycle finished")

	return result, err
}

// LastSyncTime returns when the last non-aborted cycle finished.
func (m *Manager) LastSyncTime() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastSync
}

// LastResult returns the summary of the most recent cycle.
func (m *Manager) LastResult() models.SyncResult {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastResult
}
