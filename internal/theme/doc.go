// Package theme holds the CSS framework record handed to Tailwind: the content
// globs scanned for class usage, the theme extensions (colors, font stacks,
// prose overrides), the plugin list and the safelist.
//
// LoadThemeConfig returns a validated copy of the shipped record. Export
// writes it as JSON so a tailwind.config.js can require() it unchanged.
package theme
