package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"jekyllwind/internal/config"
)

const defaultProjectConfig = "jekyllwind.toml"

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigEnvsCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				target = defaultProjectConfig
			}
			expanded, err := config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
			target = expanded

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Every key is optional; delete the ones you do not need to change.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file (default ./jekyllwind.toml)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if !ctx.configFound {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintf(out, "Environment: %s\n", snap.Environment)
			fmt.Fprintln(out, "Configuration valid")

			if !watch {
				return nil
			}
			if !ctx.configFound {
				return fmt.Errorf("--watch needs a config file; create one with `jekyllwind config init`")
			}
			return watchConfig(cmd, ctx, snap.Environment)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-validate whenever the config file changes")
	return cmd
}

func watchConfig(cmd *cobra.Command, ctx *commandContext, environment string) error {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	w := config.NewWatcher(ctx.configPath, environment, ctx.componentLogger("config-watch"), func(snap *config.Snapshot, err error) {
		if err != nil {
			fmt.Fprintln(out, renderStatusLine("Configuration", statusError, err.Error(), colorize))
			return
		}
		fmt.Fprintln(out, renderStatusLine("Configuration", statusOK, "valid ("+snap.Environment+")", colorize))
	})
	fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", ctx.configPath)
	return w.Run(cmd.Context())
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration for the selected environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if strings.EqualFold(strings.TrimSpace(formatFlag), "table") {
				fields := snap.Fields()
				rows := make([][]string, 0, len(fields))
				for _, f := range fields {
					rows = append(rows, []string{f.Key, f.Value})
				}
				fmt.Fprintln(out, renderTable("Effective configuration", []string{"Key", "Value"}, rows, nil))
				return nil
			}
			format, err := config.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			return config.Encode(out, format, snap)
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "table", "Output format: table, json, toml or yaml")
	return cmd
}

func newConfigEnvsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "envs",
		Short: "List environments and the css keys they override",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			names := ctx.declaration.EnvironmentNames()
			if jsonOutput {
				overrides := make(map[string]config.CSSOverride, len(names))
				for _, name := range names {
					overrides[name] = ctx.declaration.Environments[name].CSS
				}
				return config.Encode(cmd.OutOrStdout(), config.FormatJSON, overrides)
			}

			title := cases.Title(language.English)
			rows := make([][]string, 0, len(names))
			for _, name := range names {
				keys := ctx.declaration.Environments[name].CSS.Keys()
				rows = append(rows, []string{
					title.String(name),
					strings.Join(keys, ", "),
					yesNo(name == snap.Environment),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable("", []string{"Environment", "Overrides", "Active"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the raw overrides as JSON")
	return cmd
}
