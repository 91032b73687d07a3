// Package main hosts the jekyllwind CLI entrypoint and command graph.
//
// The Cobra command tree loads the development workflow declaration for the
// requested environment, renders it, scaffolds sample config files, exports
// the Tailwind theme record and runs preflight checks against a site. Config
// resolution and logger setup live in commandContext so subcommands only deal
// with presentation.
package main
