package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jekyllwind/internal/theme"
)

func TestThemeShow(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, "theme", "show")
	if err != nil {
		t.Fatalf("theme show: %v", err)
	}
	requireContains(t, out, "jekyll-gray")
	requireContains(t, out, "10 shades (50-900)")
	requireContains(t, out, theme.TypographyPlugin)
	requireContains(t, out, "prose, prose-gray, max-w-none")

	out, _, err = runCLI(t, "theme", "show", "--json")
	if err != nil {
		t.Fatalf("theme show --json: %v", err)
	}
	requireContains(t, out, `"jekyll-blue": "#2563eb"`)
}

func TestRenderThemeSummaryOrdersTypography(t *testing.T) {
	th := theme.Default()
	th.Theme.Extend.Typography["lg"] = theme.Typography{CSS: theme.StyleBlock{"fontSize": theme.Text("1.125rem")}}
	th.Theme.Extend.Typography["invert"] = theme.Typography{CSS: theme.StyleBlock{"color": theme.Text("#fff")}}

	first := renderThemeSummary(&th)
	for range 20 {
		if got := renderThemeSummary(&th); got != first {
			t.Fatalf("summary changed between renders:\n%s\n---\n%s", first, got)
		}
	}
	def := strings.Index(first, "DEFAULT")
	inv := strings.Index(first, "invert")
	lg := strings.Index(first, " lg ")
	if def < 0 || inv < 0 || lg < 0 || !(def < inv && inv < lg) {
		t.Fatalf("expected typography rows in sorted order:\n%s", first)
	}
}

func TestThemeExport(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, "theme", "export")
	if err != nil {
		t.Fatalf("theme export: %v", err)
	}
	target := filepath.Join(env.dir, "tailwind.theme.json")
	requireContains(t, out, target)

	f, err := os.Open(target)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()
	th, err := theme.ReadJSON(f)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if len(th.Content) != 9 {
		t.Fatalf("expected 9 content globs, got %d", len(th.Content))
	}
}
