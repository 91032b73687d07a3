package theme

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// TypographyPlugin is the plugin reference required by typography overrides.
const TypographyPlugin = "@tailwindcss/typography"

// Config is the CSS framework record.
type Config struct {
	// Content globs are scanned for class usage. A leading "!" excludes.
	Content  []string `json:"content"`
	Theme    Theme    `json:"theme"`
	Plugins  []string `json:"plugins"`
	Safelist []string `json:"safelist"`
}

// Theme wraps the extensions merged into the framework's base theme.
type Theme struct {
	Extend Extension `json:"extend"`
}

// Extension lists design-token additions. The framework merges them into its
// base theme; nothing here replaces built-in values.
type Extension struct {
	Colors     map[string]Color      `json:"colors,omitempty"`
	FontFamily map[string][]string   `json:"fontFamily,omitempty"`
	Typography map[string]Typography `json:"typography,omitempty"`
}

// Typography is one prose variant; DEFAULT applies to the bare prose class.
type Typography struct {
	CSS StyleBlock `json:"css"`
}

// Color is either a single hex value or a shade scale keyed by numeric weight.
type Color struct {
	Value  string
	Shades map[string]string
}

// IsScale reports whether the color is a shade scale.
func (c Color) IsScale() bool {
	return c.Shades != nil
}

// ShadeKeys returns the scale weights in ascending numeric order.
func (c Color) ShadeKeys() []string {
	keys := slices.Collect(maps.Keys(c.Shades))
	slices.SortFunc(keys, compareWeights)
	return keys
}

func (c Color) MarshalJSON() ([]byte, error) {
	if c.IsScale() {
		return json.Marshal(c.Shades)
	}
	return json.Marshal(c.Value)
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err == nil {
		*c = Color{Value: value}
		return nil
	}
	var shades map[string]string
	if err := json.Unmarshal(data, &shades); err != nil {
		return fmt.Errorf("color must be a string or a shade map: %w", err)
	}
	*c = Color{Shades: shades}
	return nil
}

// StyleBlock is a CSS-in-JS style map. Keys are property names or selectors.
type StyleBlock map[string]StyleValue

// StyleValue is a property value or, for selectors, a nested block.
type StyleValue struct {
	Text  string
	Block StyleBlock
}

// Text returns a leaf style value.
func Text(v string) StyleValue { return StyleValue{Text: v} }

// Nested returns a selector style value.
func Nested(b StyleBlock) StyleValue { return StyleValue{Block: b} }

// IsBlock reports whether the value is a nested selector block.
func (v StyleValue) IsBlock() bool {
	return v.Block != nil
}

func (v StyleValue) MarshalJSON() ([]byte, error) {
	if v.IsBlock() {
		return json.Marshal(map[string]StyleValue(v.Block))
	}
	return json.Marshal(v.Text)
}

func (v *StyleValue) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*v = StyleValue{Text: text}
		return nil
	}
	var block map[string]StyleValue
	if err := json.Unmarshal(data, &block); err != nil {
		return fmt.Errorf("style value must be a string or an object: %w", err)
	}
	*v = StyleValue{Block: StyleBlock(block)}
	return nil
}

func (b StyleBlock) clone() StyleBlock {
	if b == nil {
		return nil
	}
	out := make(StyleBlock, len(b))
	for k, v := range b {
		out[k] = StyleValue{Text: v.Text, Block: v.Block.clone()}
	}
	return out
}

// LoadThemeConfig returns the shipped record, normalized and validated. Each
// call returns a fresh copy.
func LoadThemeConfig() (*Config, error) {
	cfg := Default()
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Clone returns a deep copy.
func (c Config) Clone() Config {
	out := Config{
		Content:  slices.Clone(c.Content),
		Plugins:  slices.Clone(c.Plugins),
		Safelist: slices.Clone(c.Safelist),
	}
	ext := c.Theme.Extend
	if ext.Colors != nil {
		out.Theme.Extend.Colors = make(map[string]Color, len(ext.Colors))
		for name, color := range ext.Colors {
			out.Theme.Extend.Colors[name] = Color{Value: color.Value, Shades: maps.Clone(color.Shades)}
		}
	}
	if ext.FontFamily != nil {
		out.Theme.Extend.FontFamily = make(map[string][]string, len(ext.FontFamily))
		for name, stack := range ext.FontFamily {
			out.Theme.Extend.FontFamily[name] = slices.Clone(stack)
		}
	}
	if ext.Typography != nil {
		out.Theme.Extend.Typography = make(map[string]Typography, len(ext.Typography))
		for name, variant := range ext.Typography {
			out.Theme.Extend.Typography[name] = Typography{CSS: variant.CSS.clone()}
		}
	}
	return out
}

// ColorNames returns the extended color names in sorted order.
func (c *Config) ColorNames() []string {
	return slices.Sorted(maps.Keys(c.Theme.Extend.Colors))
}

// FontFamilyNames returns the extended font family names in sorted order.
func (c *Config) FontFamilyNames() []string {
	return slices.Sorted(maps.Keys(c.Theme.Extend.FontFamily))
}

// TypographyNames returns the typography variant names in sorted order.
func (c *Config) TypographyNames() []string {
	return slices.Sorted(maps.Keys(c.Theme.Extend.Typography))
}

// HasPlugin reports whether ref is listed in Plugins.
func (c *Config) HasPlugin(ref string) bool {
	return slices.Contains(c.Plugins, ref)
}
