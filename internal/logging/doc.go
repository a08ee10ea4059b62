// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

// Package logging provides the zerolog-based structured logging used across
// MovieSense.
//
// # Overview
//
// The package provides:
//   - A global zerolog logger configured once from LOG_LEVEL, LOG_FORMAT and
//     LOG_CALLER (see internal/config)
//   - Request-scoped logging: the API middleware stores a request ID in the
//     context and Ctx attaches it to every event
//   - An slog.Handler adapter so the suture supervisor tree logs through zerolog
//   - SanitizeQuery for writing user queries into log fields
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//
//	logging.Info().Str("catalog", path).Msg("catalog loaded")
//	logging.Ctx(r.Context()).Debug().Str("query", logging.SanitizeQuery(q)).Msg("query")
//
// Always terminate event chains with Msg or Send; an unterminated event is
// never written.
//
// # Thread Safety
//
// The global logger is guarded by a RWMutex. Init may be called again at any
// time to reconfigure it.
package logging
