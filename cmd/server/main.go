// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/questlog/internal/api"
	"github.com/tomtom215/questlog/internal/auth"
	"github.com/tomtom215/questlog/internal/config"
	"github.com/tomtom215/questlog/internal/database"
	"github.com/tomtom215/questlog/internal/logging"
	"github.com/tomtom215/questlog/internal/models"
	"github.com/tomtom215/questlog/internal/steam"
	"github.com/tomtom215/questlog/internal/supervisor"
	"github.com/tomtom215/questlog/internal/supervisor/services"
	intsync "github.com/tomtom215/questlog/internal/sync"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Version:   api.Version,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("steam_user_id", cfg.Steam.UserID).
		Bool("sync_loop", cfg.Sync.Enabled).
		Dur("sync_interval", cfg.Sync.Interval).
		Msg("Starting Questlog")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	steamClient := steam.NewCircuitBreakerClient(steam.NewClient(&cfg.Steam))

	engine := intsync.NewEngine(steamClient, db, intsync.NewDBActivityLog(db), intsync.EngineConfig{
		ExcludedAppIDs: cfg.Steam.ExcludedAppIDs,
		RateLimitPause: cfg.Sync.RateLimitPause,
	})
	syncManager := intsync.NewManager(engine, &cfg.Sync)

	guard, err := auth.NewBearerAuth(cfg.Security.CronSecret, bcrypt.DefaultCost)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize bearer auth")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	for _, origin := range cfg.Security.CORSOrigins {
		if origin == "*" {
			logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins in production")
			break
		}
	}

	handler := api.NewHandler(db, syncManager, steamClient, cfg.Server.CardCacheTTL)
	defer handler.Close()
	syncManager.SetOnSyncCompleted(func(models.SyncResult) { handler.InvalidateCards() })

	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(&cfg.Security)), guard)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Database.CheckpointInterval > 0 {
		tree.AddDataService(services.NewCheckpointService(db, cfg.Database.CheckpointInterval))
	}
	tree.AddSyncService(services.NewSyncService(syncManager))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree stopped unexpectedly")
		}
	}
	stop()

	select {
	case <-errCh:
	case <-time.After(cfg.Server.ShutdownTimeout + 5*time.Second):
		logging.Warn().Msg("Supervisor tree did not stop in time")
	}

	if unstopped, err := tree.UnstoppedServiceReport(); err == nil {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Questlog stopped")
}
