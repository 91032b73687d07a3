package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"jekyllwind/internal/config"
	"jekyllwind/internal/logging"
	"jekyllwind/internal/theme"
)

const defaultThemeExport = "tailwind.theme.json"

func newThemeCommand(ctx *commandContext) *cobra.Command {
	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and export the Tailwind theme record",
	}

	themeCmd.AddCommand(newThemeShowCommand())
	themeCmd.AddCommand(newThemeExportCommand(ctx))

	return themeCmd
}

func newThemeShowCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "show",
		Short:       "Summarize the theme record",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := theme.LoadThemeConfig()
			if err != nil {
				return err
			}
			if jsonOutput {
				return th.WriteJSON(cmd.OutOrStdout())
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderThemeSummary(th))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the full record as JSON")
	return cmd
}

func renderThemeSummary(th *theme.Config) string {
	var rows [][]string
	for _, name := range th.ColorNames() {
		color := th.Theme.Extend.Colors[name]
		if color.IsScale() {
			keys := color.ShadeKeys()
			rows = append(rows, []string{"color", name, fmt.Sprintf("%d shades (%s-%s)", len(keys), keys[0], keys[len(keys)-1])})
			continue
		}
		rows = append(rows, []string{"color", name, color.Value})
	}
	for _, name := range th.FontFamilyNames() {
		rows = append(rows, []string{"font", name, strings.Join(th.Theme.Extend.FontFamily[name], ", ")})
	}
	for _, name := range th.TypographyNames() {
		variant := th.Theme.Extend.Typography[name]
		rows = append(rows, []string{"typography", name, strconv.Itoa(len(variant.CSS)) + " rules"})
	}
	for _, p := range th.Plugins {
		rows = append(rows, []string{"plugin", p, ""})
	}
	rows = append(rows,
		[]string{"content", "", fmt.Sprintf("%d globs", len(th.Content))},
		[]string{"safelist", "", strings.Join(th.Safelist, ", ")},
	)
	return renderTable("Tailwind theme", []string{"Kind", "Name", "Value"}, rows, nil)
}

func newThemeExportCommand(ctx *commandContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:         "export",
		Short:       "Write the theme record as JSON for tailwind.config.js",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := theme.LoadThemeConfig()
			if err != nil {
				return err
			}
			target := strings.TrimSpace(outPath)
			if target == "" {
				target = defaultThemeExport
			}
			target, err = config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve export path: %w", err)
			}
			if err := theme.Export(cmd.Context(), th, target); err != nil {
				return err
			}
			ctx.componentLogger("theme").Debug("theme exported", logging.String(logging.FieldPath, target))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote theme to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination file (default ./tailwind.theme.json)")
	return cmd
}
