// Package logging assembles the structured slog loggers used by the jekyllwind
// CLI.
//
// It owns the console and JSON handlers, level parsing and output plumbing,
// and a few attribute helpers so every command tags its lines with the same
// keys (component, run_id, environment). NewNop returns a logger for tests and
// wiring code that cannot fail.
package logging
