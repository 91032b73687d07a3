package theme

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/lucasb-eyer/go-colorful"
)

// FieldError reports a problem at a dotted key path such as
// "theme.extend.colors.jekyll-gray.50".
type FieldError struct {
	Key     string
	Problem string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Key, e.Problem)
}

func fieldErr(key, format string, args ...any) error {
	return &FieldError{Key: key, Problem: fmt.Sprintf(format, args...)}
}

// Validate reports the first problem found in the record.
func (c *Config) Validate() error {
	if err := c.validateContent(); err != nil {
		return err
	}
	if err := c.validateColors(); err != nil {
		return err
	}
	if err := c.validateFonts(); err != nil {
		return err
	}
	if err := c.validateTypography(); err != nil {
		return err
	}
	for i, class := range c.Safelist {
		if class == "" || strings.ContainsAny(class, " \t\n") {
			return fieldErr("safelist", "entry %d is not a class name: %q", i, class)
		}
	}
	return nil
}

func (c *Config) validateContent() error {
	includes := 0
	for i, glob := range c.Content {
		pattern, negated := strings.CutPrefix(glob, "!")
		pattern = strings.TrimPrefix(pattern, "./")
		if pattern == "" || !doublestar.ValidatePattern(pattern) {
			return fieldErr("content", "entry %d is not a valid glob: %q", i, glob)
		}
		if !negated {
			includes++
		}
	}
	if includes == 0 {
		return fieldErr("content", "must include at least one non-negated glob")
	}
	return nil
}

func (c *Config) validateColors() error {
	for _, name := range c.ColorNames() {
		key := "theme.extend.colors." + name
		if strings.TrimSpace(name) == "" {
			return fieldErr("theme.extend.colors", "names must not be empty")
		}
		color := c.Theme.Extend.Colors[name]
		if !color.IsScale() {
			if err := validateHex(key, color.Value); err != nil {
				return err
			}
			continue
		}
		if len(color.Shades) == 0 {
			return fieldErr(key, "shade scale must not be empty")
		}
		for _, weight := range color.ShadeKeys() {
			if _, err := strconv.Atoi(weight); err != nil {
				return fieldErr(key, "shade %q must be a numeric weight", weight)
			}
			if err := validateHex(key+"."+weight, color.Shades[weight]); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateHex(key, value string) error {
	if _, err := colorful.Hex(value); err != nil {
		return fieldErr(key, "must be a #rrggbb or #rgb hex color, got %q", value)
	}
	return nil
}

func (c *Config) validateFonts() error {
	for _, name := range c.FontFamilyNames() {
		key := "theme.extend.fontFamily." + name
		stack := c.Theme.Extend.FontFamily[name]
		if len(stack) == 0 {
			return fieldErr(key, "must list at least one font")
		}
		for i, font := range stack {
			if font == "" {
				return fieldErr(key, "entry %d must not be empty", i)
			}
		}
	}
	return nil
}

func (c *Config) validateTypography() error {
	if len(c.Theme.Extend.Typography) == 0 {
		return nil
	}
	if !c.HasPlugin(TypographyPlugin) {
		return fieldErr("plugins", "must include %s when theme.extend.typography is set", TypographyPlugin)
	}
	for _, name := range c.TypographyNames() {
		if err := validateStyleBlock("theme.extend.typography."+name+".css", c.Theme.Extend.Typography[name].CSS); err != nil {
			return err
		}
	}
	return nil
}

func validateStyleBlock(key string, block StyleBlock) error {
	for _, prop := range slices.Sorted(maps.Keys(block)) {
		value := block[prop]
		if strings.TrimSpace(prop) == "" {
			return fieldErr(key, "contains an empty property or selector")
		}
		if value.IsBlock() {
			if err := validateStyleBlock(key+"."+prop, value.Block); err != nil {
				return err
			}
		}
	}
	return nil
}

// compareWeights orders shade keys numerically, with non-numeric keys last.
func compareWeights(a, b string) int {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		return cmp.Compare(ai, bi)
	case aerr == nil:
		return -1
	case berr == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
