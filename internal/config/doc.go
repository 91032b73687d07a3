// Package config declares, loads, and validates the development workflow
// configuration for a Jekyll + Tailwind site.
//
// It supplies the shipped defaults, reads an optional TOML, YAML, or JSON
// file with strict key checking, honours JEKYLLWIND_* environment variables,
// and resolves per-environment CSS overrides into an immutable Snapshot.
// Overrides merge one level deep: a nested record named in an override
// replaces the base record wholesale.
//
// Always obtain settings through Load or LoadDevConfig so callers receive
// normalized values and validation errors that name the offending key.
package config
