package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"jekyllwind/internal/config"
	"jekyllwind/internal/logging"
)

type globalFlags struct {
	config    string
	env       string
	strictEnv bool
	logLevel  string
	logFormat string
}

type commandContext struct {
	flags *globalFlags
	runID string

	configOnce  sync.Once
	declaration *config.Config
	snapshot    *config.Snapshot
	configPath  string
	configFound bool
	logger      *slog.Logger
	configErr   error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{
		flags: flags,
		runID: uuid.NewString(),
	}
}

// ensureConfig loads the declaration once, resolves the requested environment
// and builds the logger from the resulting snapshot.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Snapshot, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.LoadConfig(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}

		env := strings.TrimSpace(c.flags.env)
		if env == "" {
			env = config.EnvironmentFromEnv()
		}
		name, _, applied, err := cfg.ResolveEnvironment(env, c.flags.strictEnv)
		if err != nil {
			c.configErr = err
			return
		}

		snap := cfg.Snapshot(name)
		snap.Source = path

		logger, err := logging.NewFromConfig(snap, logging.Options{
			Level:  c.flags.logLevel,
			Format: c.flags.logFormat,
			Output: cmd.ErrOrStderr(),
		})
		if err != nil {
			c.configErr = err
			return
		}
		logger = logging.WithRunID(logger, c.runID)

		if !applied {
			logger.Warn("unknown environment; using base css settings",
				logging.String(logging.FieldEnvironment, name),
				logging.String("known", strings.Join(cfg.EnvironmentNames(), ", ")),
			)
		}
		logger.Debug("config resolved",
			logging.String(logging.FieldPath, path),
			logging.Bool("file_found", exists),
		)

		c.declaration = cfg
		c.snapshot = snap
		c.configPath = path
		c.configFound = exists
		c.logger = logger
	})
	return c.snapshot, c.configErr
}

// componentLogger returns the command logger tagged with component, or a
// no-op logger when config loading was skipped.
func (c *commandContext) componentLogger(component string) *slog.Logger {
	return logging.NewComponentLogger(c.logger, component)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
