package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the loader reads.
// Keys map to variables by upper-casing and replacing dots, so
// server.jekyllPort is read from JEKYLLWIND_SERVER_JEKYLLPORT.
const EnvPrefix = "JEKYLLWIND"

type envBinding struct {
	key   string
	apply func(c *Config, raw any) error
}

var envBindings = []envBinding{
	{"server.jekyllPort", func(c *Config, raw any) (err error) {
		c.Server.JekyllPort, err = toDecimalInt(raw)
		return err
	}},
	{"server.host", func(c *Config, raw any) (err error) {
		c.Server.Host, err = cast.ToStringE(raw)
		return err
	}},
	{"server.liveReload", func(c *Config, raw any) (err error) {
		c.Server.LiveReload, err = cast.ToBoolE(raw)
		return err
	}},
	{"server.incremental", func(c *Config, raw any) (err error) {
		c.Server.Incremental, err = cast.ToBoolE(raw)
		return err
	}},
	{"css.input", func(c *Config, raw any) (err error) {
		c.CSS.Input, err = cast.ToStringE(raw)
		return err
	}},
	{"css.output", func(c *Config, raw any) (err error) {
		c.CSS.Output, err = cast.ToStringE(raw)
		return err
	}},
	{"workflow.openBrowser", func(c *Config, raw any) (err error) {
		c.Workflow.OpenBrowser, err = cast.ToBoolE(raw)
		return err
	}},
	{"workflow.verbose", func(c *Config, raw any) (err error) {
		c.Workflow.Verbose, err = cast.ToBoolE(raw)
		return err
	}},
	{"workflow.clearConsole", func(c *Config, raw any) (err error) {
		c.Workflow.ClearConsole, err = cast.ToBoolE(raw)
		return err
	}},
	{"workflow.notifications", func(c *Config, raw any) (err error) {
		c.Workflow.Notifications, err = cast.ToBoolE(raw)
		return err
	}},
}

// toDecimalInt parses strings in base 10 only, so "04000" is 4000 rather
// than octal.
func toDecimalInt(raw any) (int, error) {
	if s, ok := raw.(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("%q is not a decimal integer", s)
		}
		return n, nil
	}
	return cast.ToIntE(raw)
}

func newEnvViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// EnvVarName returns the environment variable consulted for key.
func EnvVarName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// EnvKeys lists the configuration keys that may be set from the environment.
func EnvKeys() []string {
	keys := make([]string, 0, len(envBindings))
	for _, b := range envBindings {
		keys = append(keys, b.key)
	}
	return keys
}

// applyEnv overlays JEKYLLWIND_* variables onto cfg. A value that does not
// convert to the field type fails with the key path.
func applyEnv(cfg *Config) error {
	v := newEnvViper()
	for _, b := range envBindings {
		if err := v.BindEnv(b.key); err != nil {
			return &FieldError{Key: b.key, Problem: "bind environment variable", Err: err}
		}
		if !v.IsSet(b.key) {
			continue
		}
		if err := b.apply(cfg, v.Get(b.key)); err != nil {
			return &FieldError{Key: b.key, Problem: "invalid value in " + EnvVarName(b.key), Err: err}
		}
	}
	return nil
}

// EnvironmentFromEnv returns JEKYLLWIND_ENV, or DefaultEnvironment when unset.
func EnvironmentFromEnv() string {
	v := newEnvViper()
	_ = v.BindEnv("env")
	if name := normalizeEnvironmentName(v.GetString("env")); name != "" {
		return name
	}
	return DefaultEnvironment
}
