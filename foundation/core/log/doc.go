// Package log provides structured logging for the limonaca tools.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logger with JSON, text and console
//              formatters, persistent context fields, a correlation id per
//              engine run and timers for measuring tokenize and parse
//              phases. The language core never logs; the engine, the CLI
//              and the REPL do.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-16 v0.2.0: Console formatter styled with lipgloss, async mode dropped
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatConsole,
//		Name:   "limonaca",
//	})
//	logger.Info("parsed statement", log.Fields{"tokens": 5})
package log
