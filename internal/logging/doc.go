// Package logging assembles the structured slog loggers used by reshelf
// workflows.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// provides the flush-after-write sink backing per-run extract logs. Loggers
// are run-scoped values passed into orchestrators; nothing in this package
// is process-global except the console itself.
package logging
