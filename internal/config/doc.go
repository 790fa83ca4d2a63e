// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

// Package config loads and validates Questlog configuration.
//
// Configuration is layered with Koanf v2:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/questlog/config.yaml)
//  3. Environment variables
//
// Only mapped environment variables are read. The required ones are
// STEAM_API_KEY, STEAM_USER_ID and CRON_SECRET.
//
// # Example
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
//
// # YAML Layout
//
//	steam:
//	  api_key: "..."
//	  user_id: "76561197960287930"
//	  excluded_app_ids: ["218620", "359050"]
//	sync:
//	  interval: 24h
//	  rate_limit_pause: 1s
//	security:
//	  cron_secret: "..."
package config
