package theme

// Default returns the shipped Tailwind record.
func Default() Config {
	return Config{
		Content: []string{
			"./_layouts/**/*.html",
			"./_includes/**/*.html",
			"./_posts/**/*.{html,markdown,md}",
			"./_pages/**/*.{html,markdown,md}",
			"./index.{html,markdown,md}",
			"./about.{html,markdown,md}",
			"./*.{html,markdown,md}",
			"!./_site/**/*",
			"!./node_modules/**/*",
		},
		Theme: Theme{
			Extend: Extension{
				Colors: map[string]Color{
					"jekyll-blue": {Value: "#2563eb"},
					"jekyll-gray": {Shades: map[string]string{
						"50":  "#f9fafb",
						"100": "#f3f4f6",
						"200": "#e5e7eb",
						"300": "#d1d5db",
						"400": "#9ca3af",
						"500": "#6b7280",
						"600": "#4b5563",
						"700": "#374151",
						"800": "#1f2937",
						"900": "#111827",
					}},
				},
				FontFamily: map[string][]string{
					"sans": {"system-ui", "-apple-system", "BlinkMacSystemFont", "Segoe UI", "Roboto", "sans-serif"},
					"mono": {"SFMono-Regular", "Menlo", "Monaco", "Consolas", "Liberation Mono", "Courier New", "monospace"},
				},
				Typography: map[string]Typography{
					"DEFAULT": {CSS: StyleBlock{
						"maxWidth": Text("none"),
						"color":    Text("#374151"),
						"a": Nested(StyleBlock{
							"color":          Text("#2563eb"),
							"textDecoration": Text("none"),
							"&:hover": Nested(StyleBlock{
								"color":          Text("#1e40af"),
								"textDecoration": Text("underline"),
							}),
						}),
						"code::before": Nested(StyleBlock{"content": Text(`""`)}),
						"code::after":  Nested(StyleBlock{"content": Text(`""`)}),
					}},
				},
			},
		},
		Plugins:  []string{TypographyPlugin},
		Safelist: []string{"prose", "prose-gray", "max-w-none"},
	}
}
