package config

const (
	// DefaultEnvironment is used when no environment is requested.
	DefaultEnvironment = "development"

	defaultJekyllPort      = 4000
	defaultHost            = "localhost"
	defaultCSSInput        = "./assets/scss/_tailwind-input.scss"
	defaultCSSOutput       = "./assets/css/tailwind.css"
	defaultWatchDebounceMS = 100
	defaultRestartTries    = 3
	defaultTailwindConfig  = "./tailwind.config.js"
	defaultPostCSSConfig   = "./postcss.config.js"
)

// Default returns the shipped development workflow declaration.
func Default() Config {
	return Config{
		Server: Server{
			JekyllPort:  defaultJekyllPort,
			LiveReload:  true,
			Incremental: true,
			Host:        defaultHost,
		},
		CSS: CSS{
			Input:  defaultCSSInput,
			Output: defaultCSSOutput,
			Watch: CSSWatch{
				Enabled:  true,
				Debounce: defaultWatchDebounceMS,
			},
			Production: CSSProduction{
				Minify: true,
				Purge:  true,
			},
		},
		Watch: WatchPatterns{
			Content: []string{
				"./_layouts/**/*.html",
				"./_includes/**/*.html",
				"./_posts/**/*.{html,markdown,md}",
				"./_pages/**/*.{html,markdown,md}",
				"./index.{html,markdown,md}",
				"./about.{html,markdown,md}",
				"./*.{html,markdown,md}",
			},
			Ignore: []string{
				"./_site/**/*",
				"./node_modules/**/*",
				"./.git/**/*",
				"./.jekyll-cache/**/*",
			},
		},
		Workflow: Workflow{
			OpenBrowser:   false,
			Verbose:       false,
			ClearConsole:  true,
			Notifications: true,
		},
		Tools: Tools{
			Concurrently: Concurrently{
				KillOthers:   true,
				Names:        []string{"CSS", "Jekyll"},
				PrefixColors: []string{"blue", "green"},
				RestartTries: defaultRestartTries,
			},
			Tailwind: Tailwind{
				Config:  defaultTailwindConfig,
				PostCSS: defaultPostCSSConfig,
			},
		},
		Environments: map[string]EnvironmentOverride{
			"development": {
				CSS: CSSOverride{
					Minify:    boolPtr(false),
					Purge:     boolPtr(false),
					SourceMap: boolPtr(true),
				},
			},
			"production": {
				CSS: CSSOverride{
					Minify:    boolPtr(true),
					Purge:     boolPtr(true),
					SourceMap: boolPtr(false),
				},
			},
		},
	}
}

func boolPtr(v bool) *bool { return &v }
