package theme

import (
	"slices"
	"strings"
)

// requiredSafelist classes are always kept in the generated stylesheet.
var requiredSafelist = []string{"prose", "prose-gray"}

// Normalize trims and de-duplicates the string lists and adds the prose
// classes to the safelist when missing.
func (c *Config) Normalize() {
	c.Content = dedupe(c.Content)
	c.Plugins = dedupe(c.Plugins)
	c.Safelist = dedupe(c.Safelist)
	for _, class := range requiredSafelist {
		if !slices.Contains(c.Safelist, class) {
			c.Safelist = append(c.Safelist, class)
		}
	}
	for name, stack := range c.Theme.Extend.FontFamily {
		for i := range stack {
			stack[i] = strings.TrimSpace(stack[i])
		}
		c.Theme.Extend.FontFamily[name] = stack
	}
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" || slices.Contains(out, value) {
			continue
		}
		out = append(out, value)
	}
	return out
}
