// Package log provides structured logging for timeconv.
//
// Package: log
// Title: timeconv Structured Logging
// Description: Structured logger with levels, persistent context fields, a
//              correlation ID and pluggable formatters (JSON, text, console,
//              logfmt). It reads code and severity from structured errors so a
//              failed conversion is logged at a level matching its severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Dropped async buffering and audit trail, console colors via lipgloss
//
// Usage:
//
//	import mdwlog "github.com/msto63/timeconv/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatLogfmt).
//		WithOutput(os.Stderr).
//		WithCorrelationID(id)
//
//	logger.Debug("resolved local zone", mdwlog.String("zone", loc.String()))
//	logger.LogError(err)
//
//	timer := logger.StartTimer("inspect")
//	defer timer.Stop()
package log
