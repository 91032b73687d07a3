// Package preflight checks that a Jekyll site is ready for the development
// workflow described by a config snapshot: the external binaries are on PATH,
// the CSS and tool config files exist, the dev server port is free and the
// content globs match real files.
//
// The CLI "jekyllwind doctor" command runs RunAll and renders the results.
// Individual checks are exported so callers can run a subset.
package preflight
