package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// SiteFiles are the files of a minimal Jekyll site laid out the way the
// shipped declaration expects.
var SiteFiles = map[string]string{
	"_config.yml":                           "title: test\n",
	"index.html":                            "<div class=\"prose\">{{ content }}</div>\n",
	"about.md":                              "# About\n",
	"_layouts/default.html":                 "<html><body>{{ content }}</body></html>\n",
	"_includes/header.html":                 "<header class=\"max-w-none\"></header>\n",
	"_posts/2024-01-01-welcome.md":          "---\nlayout: default\n---\nHello\n",
	"assets/scss/_tailwind-input.scss":      "@tailwind base;\n@tailwind components;\n@tailwind utilities;\n",
	"assets/css/.keep":                      "",
	"tailwind.config.js":                    "module.exports = require('./tailwind.theme.json');\n",
	"postcss.config.js":                     "module.exports = { plugins: { tailwindcss: {} } };\n",
	"_site/index.html":                      "<html></html>\n",
	"node_modules/tailwindcss/package.json": "{}\n",
}

// NewSite writes SiteFiles under a fresh temp directory and returns its path.
// Files in skip are left out.
func NewSite(t testing.TB, skip ...string) string {
	t.Helper()
	root := t.TempDir()
	omitted := make(map[string]bool, len(skip))
	for _, name := range skip {
		omitted[name] = true
	}
	for name, body := range SiteFiles {
		if omitted[name] {
			continue
		}
		WriteFile(t, filepath.Join(root, filepath.FromSlash(name)), body)
	}
	return root
}

// WriteFile writes body to path, creating parent directories.
func WriteFile(t testing.TB, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
