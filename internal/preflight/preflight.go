package preflight

import (
	"context"
	"os"
	"path/filepath"

	"jekyllwind/internal/config"
	"jekyllwind/internal/theme"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	// Optional failures are reported but do not fail the run.
	Optional bool
	Detail   string
}

// Requirements returns the external binaries the workflow shells out to.
func Requirements() []Requirement {
	return []Requirement{
		{
			Name:        "Bundler",
			Command:     "bundle",
			Description: "Runs the Jekyll dev server via bundle exec",
		},
		{
			Name:        "npx",
			Command:     "npx",
			Description: "Runs the Tailwind CLI and concurrently",
		},
		{
			Name:        "Jekyll",
			Command:     "jekyll",
			Description: "Global Jekyll install, used when Bundler is not",
			Optional:    true,
		},
	}
}

// RunAll executes every check for the snapshot against the site at root.
// The theme checks are skipped when th is nil.
func RunAll(ctx context.Context, snap *config.Snapshot, th *theme.Config, root string) []Result {
	if snap == nil {
		return nil
	}
	if root == "" {
		root = "."
	}
	site := func(rel string) string { return filepath.Join(root, filepath.FromSlash(rel)) }

	var results []Result
	results = append(results, CheckBinaries(Requirements())...)

	results = append(results,
		CheckFileExists("CSS input", site(snap.CSS.Input)),
		CheckDirectoryAccess("CSS output directory", filepath.Dir(site(snap.CSS.Output))),
		CheckFileExists("Tailwind config", site(snap.Tools.Tailwind.Config)),
		CheckFileExists("PostCSS config", site(snap.Tools.Tailwind.PostCSS)),
		CheckPortAvailable(ctx, snap.Server.Host, snap.Server.JekyllPort),
	)

	fsys := os.DirFS(root)
	results = append(results, CheckContentMatches("Watch content", fsys, snap.Watch.Content, snap.Watch.Ignore))
	if th != nil {
		results = append(results,
			CheckContentMatches("Theme content", fsys, th.Content, nil),
			CheckThemeCoverage(th, snap.Watch.Content),
		)
	}
	return results
}

// Failed returns the required checks that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed && !r.Optional {
			failed = append(failed, r)
		}
	}
	return failed
}
