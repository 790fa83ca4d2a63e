// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package auth

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/questlog/internal/logging"
)

// ErrEmptySecret is returned by NewBearerAuth for an empty secret.
var ErrEmptySecret = errors.New("bearer secret must not be empty")

// BearerAuth verifies "Authorization: Bearer <secret>" headers.
type BearerAuth struct {
	hash     []byte
	security *logging.SecurityLogger
}

// NewBearerAuth hashes secret with the given bcrypt cost.
func NewBearerAuth(secret string, cost int) (*BearerAuth, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	hash, err := hashSecret(secret, cost)
	if err != nil {
		return nil, err
	}
	return &BearerAuth{hash: hash, security: logging.NewSecurityLogger()}, nil
}

// hashSecret bcrypts the SHA-256 of secret; bcrypt only reads 72 bytes.
func hashSecret(secret string, cost int) ([]byte, error) {
	sum := sha256.Sum256([]byte(secret))
	hash, err := bcrypt.GenerateFromPassword(sum[:], cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash bearer secret: %w", err)
	}
	return hash, nil
}

// Verify reports whether authHeader carries the configured secret.
func (b *BearerAuth) Verify(authHeader string) bool {
	token := ExtractBearerToken(authHeader)
	if token == "" {
		return false
	}
	sum := sha256.Sum256([]byte(token))
	return bcrypt.CompareHashAndPassword(b.hash, sum[:]) == nil
}

// ExtractBearerToken returns the token from a "Bearer <token>" header, or ""
// if the header uses another scheme.
func ExtractBearerToken(authHeader string) string {
	authHeader = strings.TrimSpace(authHeader)
	const prefix = "bearer "
	if len(authHeader) <= len(prefix) || !strings.EqualFold(authHeader[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(authHeader[len(prefix):])
}

// Middleware rejects requests without the secret by calling unauthorized.
func (b *BearerAuth) Middleware(unauthorized http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !b.Verify(header) {
				reason := "invalid bearer token"
				if header == "" {
					reason = "missing authorization header"
				}
				b.security.LogBearerRejected(r.URL.Path, r.RemoteAddr, r.UserAgent(), reason)
				unauthorized.ServeHTTP(w, r)
				return
			}
			b.security.LogBearerAccepted(r.URL.Path, r.RemoteAddr)
			next.ServeHTTP(w, r)
		})
	}
}
