package config

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	minJekyllPort = 1024
	maxJekyllPort = 49151
)

// Validate ensures the declaration is usable. It reports the first offending
// key and never partially accepts a record.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := validateCSS("css", c.CSS); err != nil {
		return err
	}
	if err := c.validateWatch(); err != nil {
		return err
	}
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateEnvironments(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateServer() error {
	port := c.Server.JekyllPort
	if port < minJekyllPort || port > maxJekyllPort {
		return fieldErr("server.jekyllPort", "must be between %d and %d, got %d", minJekyllPort, maxJekyllPort, port)
	}
	if strings.ContainsAny(c.Server.Host, " \t/") {
		return fieldErr("server.host", "must be a bare hostname or address, got %q", c.Server.Host)
	}
	return nil
}

func validateCSS(prefix string, css CSS) error {
	if err := validateRelativePath(prefix+".input", css.Input); err != nil {
		return err
	}
	if err := validateRelativePath(prefix+".output", css.Output); err != nil {
		return err
	}
	if filepath.Clean(css.Input) == filepath.Clean(css.Output) {
		return fieldErr(prefix+".output", "must differ from %s.input", prefix)
	}
	if css.Watch.Debounce < 0 {
		return fieldErr(prefix+".watch.debounce", "must be >= 0 (milliseconds), got %d", css.Watch.Debounce)
	}
	return nil
}

func validateRelativePath(key, value string) error {
	if strings.TrimSpace(value) == "" {
		return fieldErr(key, "must be set")
	}
	if filepath.IsAbs(value) {
		return fieldErr(key, "must be relative to the site root, got %q", value)
	}
	return nil
}

func (c *Config) validateWatch() error {
	if len(c.Watch.Content) == 0 {
		return fieldErr("watch.content", "must include at least one glob")
	}
	if err := validateGlobs("watch.content", c.Watch.Content); err != nil {
		return err
	}
	return validateGlobs("watch.ignore", c.Watch.Ignore)
}

func validateGlobs(key string, patterns []string) error {
	for i, pattern := range patterns {
		if !doublestar.ValidatePattern(strings.TrimPrefix(pattern, "./")) {
			return fieldErr(key, "entry %d is not a valid glob: %q", i, pattern)
		}
	}
	return nil
}

func (c *Config) validateTools() error {
	cc := c.Tools.Concurrently
	if len(cc.Names) != len(cc.PrefixColors) {
		return fieldErr("tools.concurrently.prefixColors", "must pair with tools.concurrently.names (%d names, %d colors)", len(cc.Names), len(cc.PrefixColors))
	}
	for i, name := range cc.Names {
		if name == "" {
			return fieldErr("tools.concurrently.names", "entry %d must not be empty", i)
		}
	}
	for i, color := range cc.PrefixColors {
		if color == "" {
			return fieldErr("tools.concurrently.prefixColors", "entry %d must not be empty", i)
		}
		if strings.HasPrefix(color, "#") {
			if _, err := colorful.Hex(color); err != nil {
				return fieldErr("tools.concurrently.prefixColors", "entry %d is not a valid hex color: %q", i, color)
			}
		}
	}
	if cc.RestartTries < 0 {
		return fieldErr("tools.concurrently.restartTries", "must be >= 0, got %d", cc.RestartTries)
	}
	if err := validateRelativePath("tools.tailwind.config", c.Tools.Tailwind.Config); err != nil {
		return err
	}
	return validateRelativePath("tools.tailwind.postcss", c.Tools.Tailwind.PostCSS)
}

// validateEnvironments checks every override against the merged record it
// would produce, so a bad override fails the load even when another
// environment is selected.
func (c *Config) validateEnvironments() error {
	for _, name := range c.EnvironmentNames() {
		if name == "" {
			return fieldErr("environments", "names must not be empty")
		}
		merged := MergeOverride(c.CSS, c.Environments[name].CSS)
		if err := validateCSS("environments."+name+".css", merged); err != nil {
			return err
		}
	}
	return nil
}
