// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/questlog/internal/auth"
	"github.com/tomtom215/questlog/internal/middleware"
)

// Router wires handlers to routes.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	guard         *auth.BearerAuth
}

// NewRouter creates a router. guard protects the cron and write endpoints.
func NewRouter(handler *Handler, chiMw *ChiMiddleware, guard *auth.BearerAuth) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
		guard:         guard,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(middleware.PrometheusMetrics)

	// Scheduler entry point. Plain text in both directions.
	r.With(router.guard.Middleware(http.HandlerFunc(unauthorizedText))).
		Get("/api/cron", router.handler.Cron)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())

		r.Get("/health", router.handler.Health)
		r.Get("/health/live", router.handler.HealthLive)

		r.Get("/games", router.handler.ListGames)
		r.Get("/games/{id}", router.handler.GetGame)
		r.Get("/logs", router.handler.Logs)

		r.Group(func(r chi.Router) {
			r.Use(router.guard.Middleware(http.HandlerFunc(unauthorizedJSON)))
			r.Post("/sync", router.handler.TriggerSync)
			r.Post("/games/manual", router.handler.UpsertManualGame)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	return r
}
