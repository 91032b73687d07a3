package config

import (
	"strings"
)

func (c *Config) normalize() {
	c.normalizeServer()
	c.normalizeCSS()
	c.Watch.Content = normalizeList(c.Watch.Content)
	c.Watch.Ignore = normalizeList(c.Watch.Ignore)
	c.normalizeTools()
	c.normalizeEnvironments()
}

func (c *Config) normalizeServer() {
	c.Server.Host = strings.TrimSpace(c.Server.Host)
	if c.Server.Host == "" {
		c.Server.Host = defaultHost
	}
}

func (c *Config) normalizeCSS() {
	c.CSS.Input = strings.TrimSpace(c.CSS.Input)
	c.CSS.Output = strings.TrimSpace(c.CSS.Output)
}

func (c *Config) normalizeTools() {
	cc := &c.Tools.Concurrently
	for i := range cc.Names {
		cc.Names[i] = strings.TrimSpace(cc.Names[i])
	}
	for i := range cc.PrefixColors {
		cc.PrefixColors[i] = strings.TrimSpace(cc.PrefixColors[i])
	}
	c.Tools.Tailwind.Config = strings.TrimSpace(c.Tools.Tailwind.Config)
	c.Tools.Tailwind.PostCSS = strings.TrimSpace(c.Tools.Tailwind.PostCSS)
}

// normalizeEnvironments lower-cases environment names. When two names from the
// same file fold to the same key the later one in sorted order wins.
func (c *Config) normalizeEnvironments() {
	if len(c.Environments) == 0 {
		return
	}
	out := make(map[string]EnvironmentOverride, len(c.Environments))
	for _, name := range c.EnvironmentNames() {
		env := c.Environments[name]
		if env.CSS.Input != nil {
			env.CSS.Input = stringPtrTrimmed(*env.CSS.Input)
		}
		if env.CSS.Output != nil {
			env.CSS.Output = stringPtrTrimmed(*env.CSS.Output)
		}
		out[normalizeEnvironmentName(name)] = env
	}
	c.Environments = out
}

func normalizeEnvironmentName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// normalizeList trims entries and drops blanks and exact duplicates while
// preserving order.
func normalizeList(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}

func stringPtrTrimmed(v string) *string {
	trimmed := strings.TrimSpace(v)
	return &trimmed
}
