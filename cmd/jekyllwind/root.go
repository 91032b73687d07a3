package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "jekyllwind",
		Short:         "Jekyll + Tailwind development workflow configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.StringVarP(&flags.env, "env", "e", "", "Environment to resolve (default $JEKYLLWIND_ENV or development)")
	pf.BoolVar(&flags.strictEnv, "strict-env", false, "Fail when the environment has no override entry")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (default info, debug when workflow.verbose)")
	pf.StringVar(&flags.logFormat, "log-format", "console", "Log format: console or json")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newThemeCommand(ctx))
	rootCmd.AddCommand(newContentCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))

	return rootCmd
}
