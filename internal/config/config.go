package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"jekyllwind/internal/fileutil"
)

//go:embed sample_config.toml
var sampleConfig string

// Server contains the Jekyll development server parameters.
type Server struct {
	JekyllPort  int    `toml:"jekyllPort" yaml:"jekyllPort" json:"jekyllPort"`
	LiveReload  bool   `toml:"liveReload" yaml:"liveReload" json:"liveReload"`
	Incremental bool   `toml:"incremental" yaml:"incremental" json:"incremental"`
	Host        string `toml:"host" yaml:"host" json:"host"`
}

// CSSWatch controls Tailwind watch mode.
type CSSWatch struct {
	Enabled bool `toml:"enabled" yaml:"enabled" json:"enabled"`
	// Debounce is expressed in milliseconds.
	Debounce int `toml:"debounce" yaml:"debounce" json:"debounce"`
}

// CSSProduction contains the production build toggles.
type CSSProduction struct {
	Minify bool `toml:"minify" yaml:"minify" json:"minify"`
	Purge  bool `toml:"purge" yaml:"purge" json:"purge"`
}

// CSS contains the Tailwind build settings.
//
// Minify, Purge and SourceMap are the per-environment toggles. They live in
// the base record so environment overrides never add keys the base lacks.
type CSS struct {
	Input      string        `toml:"input" yaml:"input" json:"input"`
	Output     string        `toml:"output" yaml:"output" json:"output"`
	Watch      CSSWatch      `toml:"watch" yaml:"watch" json:"watch"`
	Production CSSProduction `toml:"production" yaml:"production" json:"production"`
	Minify     bool          `toml:"minify" yaml:"minify" json:"minify"`
	Purge      bool          `toml:"purge" yaml:"purge" json:"purge"`
	SourceMap  bool          `toml:"sourceMap" yaml:"sourceMap" json:"sourceMap"`
}

// WatchPatterns lists the globs scanned for class usage and the globs excluded from scanning.
type WatchPatterns struct {
	Content []string `toml:"content" yaml:"content" json:"content"`
	Ignore  []string `toml:"ignore" yaml:"ignore" json:"ignore"`
}

// Workflow contains developer experience toggles.
type Workflow struct {
	OpenBrowser   bool `toml:"openBrowser" yaml:"openBrowser" json:"openBrowser"`
	Verbose       bool `toml:"verbose" yaml:"verbose" json:"verbose"`
	ClearConsole  bool `toml:"clearConsole" yaml:"clearConsole" json:"clearConsole"`
	Notifications bool `toml:"notifications" yaml:"notifications" json:"notifications"`
}

// Concurrently describes how the process supervisor should run the CSS and Jekyll processes.
// Names and PrefixColors are paired by position.
type Concurrently struct {
	KillOthers   bool     `toml:"killOthers" yaml:"killOthers" json:"killOthers"`
	Names        []string `toml:"names" yaml:"names" json:"names"`
	PrefixColors []string `toml:"prefixColors" yaml:"prefixColors" json:"prefixColors"`
	RestartTries int      `toml:"restartTries" yaml:"restartTries" json:"restartTries"`
}

// Tailwind points at the Tailwind CLI configuration files.
type Tailwind struct {
	Config  string `toml:"config" yaml:"config" json:"config"`
	PostCSS string `toml:"postcss" yaml:"postcss" json:"postcss"`
}

// Tools groups external tool settings.
type Tools struct {
	Concurrently Concurrently `toml:"concurrently" yaml:"concurrently" json:"concurrently"`
	Tailwind     Tailwind     `toml:"tailwind" yaml:"tailwind" json:"tailwind"`
}

// EnvironmentOverride is the partial configuration applied for one environment.
type EnvironmentOverride struct {
	CSS CSSOverride `toml:"css" yaml:"css" json:"css"`
}

// Config is the full development workflow declaration.
//
// Sections:
//   - Server: Jekyll dev server port, host, live reload, incremental builds
//   - CSS: Tailwind input/output, watch mode, production toggles
//   - Watch: content globs scanned for classes and ignored globs
//   - Workflow: browser, verbosity, console and notification toggles
//   - Tools: concurrently supervisor and Tailwind config file paths
//   - Environments: per-environment CSS overrides keyed by environment name
type Config struct {
	Server       Server                         `toml:"server" yaml:"server" json:"server"`
	CSS          CSS                            `toml:"css" yaml:"css" json:"css"`
	Watch        WatchPatterns                  `toml:"watch" yaml:"watch" json:"watch"`
	Workflow     Workflow                       `toml:"workflow" yaml:"workflow" json:"workflow"`
	Tools        Tools                          `toml:"tools" yaml:"tools" json:"tools"`
	Environments map[string]EnvironmentOverride `toml:"environments" yaml:"environments" json:"environments"`
}

// projectConfigNames are searched in the working directory, in order.
var projectConfigNames = []string{"jekyllwind.toml", "jekyllwind.yaml", "jekyllwind.yml", "jekyllwind.json"}

// DefaultConfigPath returns the absolute path to the user-level configuration file.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/jekyllwind/config.toml")
}

// Load reads an optional configuration file, layers JEKYLLWIND_* environment
// variables on top, validates the result and resolves the requested
// environment. An empty environment falls back to JEKYLLWIND_ENV and then to
// DefaultEnvironment.
//
// It returns the snapshot, the resolved file path, and whether that file existed.
func Load(path, environment string) (*Snapshot, string, bool, error) {
	cfg, resolvedPath, exists, err := LoadConfig(path)
	if err != nil {
		return nil, "", false, err
	}
	if strings.TrimSpace(environment) == "" {
		environment = EnvironmentFromEnv()
	}
	snap := cfg.Snapshot(environment)
	snap.Source = resolvedPath
	return snap, resolvedPath, exists, nil
}

// LoadConfig returns the validated declaration without resolving an environment.
func LoadConfig(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		format, err := FormatFromPath(resolvedPath)
		if err != nil {
			return nil, "", false, err
		}
		if err := Decode(file, format, &cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, "", false, err
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// LoadDevConfig builds the snapshot for environment from the shipped
// declaration alone. No files or environment variables are consulted, so two
// calls with the same argument return structurally equal snapshots.
func LoadDevConfig(environment string) (*Snapshot, error) {
	cfg := Default()
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg.Snapshot(environment), nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	for _, name := range projectConfigNames {
		projectPath, err := filepath.Abs(name)
		if err != nil {
			return "", false, err
		}
		if fileutil.Exists(projectPath) {
			return projectPath, true, nil
		}
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if fileutil.Exists(defaultPath) {
		return defaultPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes the commented sample configuration to path.
func CreateSample(path string) error {
	if err := fileutil.WriteFileAtomic(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// SampleConfig returns the embedded sample configuration text.
func SampleConfig() string {
	return sampleConfig
}
