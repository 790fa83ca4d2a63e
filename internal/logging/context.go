// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDs are the identifiers Ctx copies onto log lines. A sync cycle owns a
// correlation ID; an HTTP request owns a request ID and, through the request
// ID middleware, a correlation ID of its own.
type traceIDs struct {
	correlation string
	request     string
}

type traceKey struct{}

func idsFrom(ctx context.Context) traceIDs {
	ids, _ := ctx.Value(traceKey{}).(traceIDs)
	return ids
}

// GenerateCorrelationID returns an 8 character ID.
func GenerateCorrelationID() string {
	return uuid.New().String()[:8]
}

// GenerateRequestID returns a full UUID.
func GenerateRequestID() string {
	return uuid.New().String()
}

func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	ids := idsFrom(ctx)
	ids.correlation = id
	return context.WithValue(ctx, traceKey{}, ids)
}

// ContextWithNewCorrelationID tags ctx with a freshly generated correlation ID.
func ContextWithNewCorrelationID(ctx context.Context) context.Context {
	return ContextWithCorrelationID(ctx, GenerateCorrelationID())
}

func CorrelationIDFromContext(ctx context.Context) string {
	return idsFrom(ctx).correlation
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	ids := idsFrom(ctx)
	ids.request = id
	return context.WithValue(ctx, traceKey{}, ids)
}

func RequestIDFromContext(ctx context.Context) string {
	return idsFrom(ctx).request
}

// Ctx returns the global logger carrying whatever IDs ctx holds.
//
//	logging.Ctx(ctx).Info().Str("game_id", id).Msg("Achievements written")
func Ctx(ctx context.Context) *zerolog.Logger {
	ids := idsFrom(ctx)
	if ids == (traceIDs{}) {
		return current()
	}

	zctx := With()
	if ids.correlation != "" {
		zctx = zctx.Str("correlation_id", ids.correlation)
	}
	if ids.request != "" {
		zctx = zctx.Str("request_id", ids.request)
	}
	l := zctx.Logger()
	return &l
}
