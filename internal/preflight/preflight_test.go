package preflight

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"jekyllwind/internal/config"
	"jekyllwind/internal/testsupport"
	"jekyllwind/internal/theme"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckFileExists(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "tailwind.config.js")
	if err := os.WriteFile(f, []byte("module.exports = {}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if r := CheckFileExists("config", f); !r.Passed {
		t.Fatalf("expected pass, got %s", r.Detail)
	}
	if r := CheckFileExists("config", dir); r.Passed {
		t.Fatal("expected failure for directory")
	}
	if r := CheckFileExists("config", filepath.Join(dir, "missing.js")); r.Passed {
		t.Fatal("expected failure for missing file")
	}
}

func TestCheckBinaries(t *testing.T) {
	testsupport.StubBinaries(t, "bundle")
	results := CheckBinaries([]Requirement{
		{Name: "Bundler", Command: "bundle"},
		{Name: "Missing", Command: "clearly-not-present-binary", Optional: true},
		{Name: "Blank", Command: "  "},
	})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].Passed {
		t.Fatalf("expected stubbed binary to be found, got %#v", results[0])
	}
	if results[1].Passed || !results[1].Optional {
		t.Fatalf("expected optional failure, got %#v", results[1])
	}
	if results[2].Passed || results[2].Detail != "command not configured" {
		t.Fatalf("unexpected blank command result %#v", results[2])
	}
}

func TestCheckPortAvailable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port

	if r := CheckPortAvailable(context.Background(), "127.0.0.1", port); r.Passed {
		t.Fatal("expected busy port to fail")
	}
	_ = ln.Close()
	if r := CheckPortAvailable(context.Background(), "127.0.0.1", port); !r.Passed {
		t.Fatalf("expected released port to pass, got %s", r.Detail)
	}
}

func TestCheckContentMatches(t *testing.T) {
	fsys := fstest.MapFS{
		"index.html":         {Data: []byte("x")},
		"_site/index.html":   {Data: []byte("x")},
		"_layouts/base.html": {Data: []byte("x")},
	}
	r := CheckContentMatches("content", fsys, []string{"./*.html", "./_posts/**/*.md"}, []string{"./_site/**/*"})
	if !r.Passed {
		t.Fatalf("expected pass, got %s", r.Detail)
	}
	if !strings.Contains(r.Detail, "_posts/**/*.md") {
		t.Fatalf("expected empty pattern in detail: %s", r.Detail)
	}
	if r := CheckContentMatches("content", fsys, []string{"./_drafts/*.md"}, nil); r.Passed {
		t.Fatal("expected failure when nothing matches")
	}
}

func TestCheckThemeCoverage(t *testing.T) {
	th := theme.Default()
	if r := CheckThemeCoverage(&th, []string{"./_layouts/**/*.html"}); !r.Passed {
		t.Fatalf("expected pass, got %s", r.Detail)
	}
	r := CheckThemeCoverage(&th, []string{"./_data/**/*.yml"})
	if r.Passed || !strings.Contains(r.Detail, "_data/**/*.yml") {
		t.Fatalf("expected missing glob, got %#v", r)
	}
}

func testSnapshot(t *testing.T) *config.Snapshot {
	t.Helper()
	snap, err := config.LoadDevConfig("development")
	if err != nil {
		t.Fatal(err)
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	snap.Server.Host = "127.0.0.1"
	snap.Server.JekyllPort = ln.Addr().(*net.TCPAddr).Port
	_ = ln.Close()
	return snap
}

func TestRunAllReadySite(t *testing.T) {
	testsupport.StubBinaries(t)
	root := testsupport.NewSite(t)
	th := theme.Default()

	results := RunAll(context.Background(), testSnapshot(t), &th, root)
	if failed := Failed(results); len(failed) > 0 {
		t.Fatalf("expected all checks to pass, failed: %#v", failed)
	}
	names := make(map[string]bool, len(results))
	for _, r := range results {
		names[r.Name] = true
	}
	for _, want := range []string{"Bundler", "npx", "CSS input", "Jekyll port", "Watch content", "Theme content coverage"} {
		if !names[want] {
			t.Errorf("missing check %q", want)
		}
	}
}

func TestRunAllReportsMissingFiles(t *testing.T) {
	testsupport.StubBinaries(t, "bundle", "npx")
	root := testsupport.NewSite(t, "assets/scss/_tailwind-input.scss", "postcss.config.js")

	results := RunAll(context.Background(), testSnapshot(t), nil, root)
	failed := Failed(results)
	got := make([]string, 0, len(failed))
	for _, r := range failed {
		got = append(got, r.Name)
	}
	if strings.Join(got, ",") != "CSS input,PostCSS config" {
		t.Fatalf("unexpected failures: %v", got)
	}
	for _, r := range results {
		if r.Name == "Jekyll" && (r.Passed || !r.Optional) {
			t.Fatalf("expected optional jekyll failure, got %#v", r)
		}
	}
}

func TestRunAllNilSnapshot(t *testing.T) {
	if results := RunAll(context.Background(), nil, nil, "."); results != nil {
		t.Fatalf("expected nil results, got %v", results)
	}
}
