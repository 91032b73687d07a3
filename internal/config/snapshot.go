package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrUnknownEnvironment reports an environment name with no override entry.
// Only strict resolution returns it.
var ErrUnknownEnvironment = errors.New("unknown environment")

// Snapshot is the effective, merged configuration for one environment.
//
// Snapshots are values: slices are copied on construction and nothing in this
// package mutates a snapshot after returning it.
type Snapshot struct {
	// Environment is the normalized name that was requested.
	Environment string `toml:"environment" yaml:"environment" json:"environment"`
	// EnvironmentApplied is false when Environment has no override entry and
	// CSS therefore equals the base record.
	EnvironmentApplied bool `toml:"environmentApplied" yaml:"environmentApplied" json:"environmentApplied"`
	// Source is the configuration file path, empty for the shipped declaration.
	Source string `toml:"source,omitempty" yaml:"source,omitempty" json:"source,omitempty"`

	Server   Server        `toml:"server" yaml:"server" json:"server"`
	CSS      CSS           `toml:"css" yaml:"css" json:"css"`
	Watch    WatchPatterns `toml:"watch" yaml:"watch" json:"watch"`
	Workflow Workflow      `toml:"workflow" yaml:"workflow" json:"workflow"`
	Tools    Tools         `toml:"tools" yaml:"tools" json:"tools"`
}

// Snapshot resolves environment against the declaration and returns the merged view.
// Unknown environments yield the base CSS record unmodified.
func (c *Config) Snapshot(environment string) *Snapshot {
	name, override, ok, _ := c.ResolveEnvironment(environment, false)
	css := c.CSS
	if ok {
		css = MergeOverride(c.CSS, override.CSS)
	}
	clone := c.Clone()
	return &Snapshot{
		Environment:        name,
		EnvironmentApplied: ok,
		Server:             clone.Server,
		CSS:                css,
		Watch:              clone.Watch,
		Workflow:           clone.Workflow,
		Tools:              clone.Tools,
	}
}

// ResolveEnvironment normalizes environment (empty means DefaultEnvironment)
// and looks up its override. With strict set, a missing entry returns
// ErrUnknownEnvironment; otherwise ok is false and err is nil.
func (c *Config) ResolveEnvironment(environment string, strict bool) (string, EnvironmentOverride, bool, error) {
	name := normalizeEnvironmentName(environment)
	if name == "" {
		name = DefaultEnvironment
	}
	override, ok := c.Environments[name]
	if !ok && strict {
		known := strings.Join(c.EnvironmentNames(), ", ")
		return name, EnvironmentOverride{}, false, fmt.Errorf("%w %q (known: %s)", ErrUnknownEnvironment, name, known)
	}
	return name, override, ok, nil
}

// EnvironmentNames returns the declared environment names in sorted order.
func (c *Config) EnvironmentNames() []string {
	names := make([]string, 0, len(c.Environments))
	for name := range c.Environments {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Clone returns a deep copy of the declaration.
func (c Config) Clone() Config {
	out := c
	out.Watch.Content = slices.Clone(c.Watch.Content)
	out.Watch.Ignore = slices.Clone(c.Watch.Ignore)
	out.Tools.Concurrently.Names = slices.Clone(c.Tools.Concurrently.Names)
	out.Tools.Concurrently.PrefixColors = slices.Clone(c.Tools.Concurrently.PrefixColors)
	if c.Environments != nil {
		out.Environments = make(map[string]EnvironmentOverride, len(c.Environments))
		for name, env := range c.Environments {
			out.Environments[name] = EnvironmentOverride{CSS: env.CSS.clone()}
		}
	}
	return out
}

// Field is a single flattened key/value pair of a snapshot.
type Field struct {
	Key   string
	Value string
}

// Fields flattens the snapshot into dotted key paths in declaration order.
func (s *Snapshot) Fields() []Field {
	return []Field{
		{"environment", s.Environment},
		{"server.jekyllPort", strconv.Itoa(s.Server.JekyllPort)},
		{"server.liveReload", strconv.FormatBool(s.Server.LiveReload)},
		{"server.incremental", strconv.FormatBool(s.Server.Incremental)},
		{"server.host", s.Server.Host},
		{"css.input", s.CSS.Input},
		{"css.output", s.CSS.Output},
		{"css.watch.enabled", strconv.FormatBool(s.CSS.Watch.Enabled)},
		{"css.watch.debounce", strconv.Itoa(s.CSS.Watch.Debounce)},
		{"css.production.minify", strconv.FormatBool(s.CSS.Production.Minify)},
		{"css.production.purge", strconv.FormatBool(s.CSS.Production.Purge)},
		{"css.minify", strconv.FormatBool(s.CSS.Minify)},
		{"css.purge", strconv.FormatBool(s.CSS.Purge)},
		{"css.sourceMap", strconv.FormatBool(s.CSS.SourceMap)},
		{"watch.content", strings.Join(s.Watch.Content, ", ")},
		{"watch.ignore", strings.Join(s.Watch.Ignore, ", ")},
		{"workflow.openBrowser", strconv.FormatBool(s.Workflow.OpenBrowser)},
		{"workflow.verbose", strconv.FormatBool(s.Workflow.Verbose)},
		{"workflow.clearConsole", strconv.FormatBool(s.Workflow.ClearConsole)},
		{"workflow.notifications", strconv.FormatBool(s.Workflow.Notifications)},
		{"tools.concurrently.killOthers", strconv.FormatBool(s.Tools.Concurrently.KillOthers)},
		{"tools.concurrently.names", strings.Join(s.Tools.Concurrently.Names, ", ")},
		{"tools.concurrently.prefixColors", strings.Join(s.Tools.Concurrently.PrefixColors, ", ")},
		{"tools.concurrently.restartTries", strconv.Itoa(s.Tools.Concurrently.RestartTries)},
		{"tools.tailwind.config", s.Tools.Tailwind.Config},
		{"tools.tailwind.postcss", s.Tools.Tailwind.PostCSS},
	}
}
