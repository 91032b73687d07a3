package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jekyllwind/internal/logging"
	"jekyllwind/internal/preflight"
	"jekyllwind/internal/theme"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that the site is ready for the development workflow",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			th, err := theme.LoadThemeConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cmd.Context(), snap, th, root)

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("jekyllwind doctor ("+snap.Environment+")", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, line := range checkLines(results, colorize) {
				fmt.Fprintln(out, line)
			}

			if failed := preflight.Failed(results); len(failed) > 0 {
				ctx.componentLogger("doctor").Debug("preflight failed", logging.Int("failed", len(failed)), logging.Int("total", len(results)))
				return fmt.Errorf("%d of %d checks failed", len(failed), len(results))
			}
			fmt.Fprintln(out, "All required checks passed")
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Site root directory")
	return cmd
}
