// Package log provides structured logging for chime.
//
// Package: log
// Title: chime Structured Logging
// Description: Leveled, structured logging with persistent context fields,
//              JSON, text and logfmt output, and integration with the
//              structured errors of foundation/core/error.
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-12 v0.2.0: Deterministic field order, dropped async output
//
// Usage:
//
//	import mdwlog "github.com/RonaldDijks/chime/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatLogfmt).
//		WithField("component", "engine")
//
//	logger.Debug("Statement executed", mdwlog.Fields{
//		"input":    "2 + 3",
//		"duration": elapsed,
//	})
//	logger.LogError(err)
package log
