package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"jekyllwind/internal/content"
	"jekyllwind/internal/theme"
)

func newContentCommand(ctx *commandContext) *cobra.Command {
	var root string
	var useTheme bool
	var summary bool

	cmd := &cobra.Command{
		Use:   "content",
		Short: "List the files the content globs resolve to",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			include, exclude := snap.Watch.Content, snap.Watch.Ignore
			if useTheme {
				th, err := theme.LoadThemeConfig()
				if err != nil {
					return err
				}
				include, exclude = th.Content, nil
			}

			results, err := content.ResolvePatterns(os.DirFS(root), include, exclude)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if summary {
				rows := make([][]string, 0, len(results))
				for _, r := range results {
					rows = append(rows, []string{r.Pattern, strconv.Itoa(len(r.Matches))})
				}
				fmt.Fprintln(out, renderTable("", []string{"Pattern", "Files"}, rows, []columnAlignment{alignLeft, alignRight}))
				return nil
			}

			files, err := content.Resolve(os.DirFS(root), include, exclude)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintln(out, f)
			}
			ctx.componentLogger("content").Debug("content resolved", "root", root, "files", len(files))
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Site root directory")
	cmd.Flags().BoolVar(&useTheme, "theme", false, "Use the theme content globs instead of watch.content/watch.ignore")
	cmd.Flags().BoolVar(&summary, "summary", false, "Show match counts per pattern")
	return cmd
}
