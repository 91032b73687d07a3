package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jekyllwind/internal/config"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "defaults were used")
	requireContains(t, out, "Environment: development")
	requireContains(t, out, "Configuration valid")

	out, _, err = runCLI(t, "config", "init")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	target := filepath.Join(env.dir, "jekyllwind.toml")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, "config", "init"); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected existing file error, got %v", err)
	}
	if _, _, err := runCLI(t, "config", "init", "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate with sample: %v", err)
	}
	requireContains(t, out, "Config path: "+target)
	if strings.Contains(out, "defaults were used") {
		t.Fatalf("expected project file to be found: %q", out)
	}
}

func TestConfigValidateReportsKeyPath(t *testing.T) {
	env := setupCLITestEnv(t)
	path := filepath.Join(env.dir, "site.yaml")
	if err := os.WriteFile(path, []byte("tools:\n  concurrently:\n    restartTries: -2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err := runCLI(t, "--config", path, "config", "validate")
	if err == nil {
		t.Fatal("expected validation error")
	}
	requireContains(t, err.Error(), "tools.concurrently.restartTries")
}

func TestConfigShowFormats(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, "--env", "production", "config", "show", "--format", "json")
	if err != nil {
		t.Fatalf("config show json: %v", err)
	}
	var snap config.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("decode snapshot: %v\n%s", err, out)
	}
	if snap.Environment != "production" || !snap.CSS.Minify || snap.CSS.SourceMap {
		t.Fatalf("unexpected production snapshot: %+v", snap.CSS)
	}

	out, _, err = runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("config show table: %v", err)
	}
	requireContains(t, out, "server.jekyllPort")
	requireContains(t, out, "css.sourceMap")

	out, _, err = runCLI(t, "config", "show", "--format", "yaml")
	if err != nil {
		t.Fatalf("config show yaml: %v", err)
	}
	requireContains(t, out, "jekyllPort: 4000")

	out, _, err = runCLI(t, "config", "show", "--format", "toml")
	if err != nil {
		t.Fatalf("config show toml: %v", err)
	}
	requireContains(t, out, "environment = 'development'")

	if _, _, err := runCLI(t, "config", "show", "--format", "xml"); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestConfigEnvs(t *testing.T) {
	setupCLITestEnv(t)
	out, _, err := runCLI(t, "--env", "production", "config", "envs")
	if err != nil {
		t.Fatalf("config envs: %v", err)
	}
	requireContains(t, out, "Development")
	requireContains(t, out, "Production")
	requireContains(t, out, "minify, purge, sourceMap")

	out, _, err = runCLI(t, "config", "envs", "--json")
	if err != nil {
		t.Fatalf("config envs --json: %v", err)
	}
	var overrides map[string]config.CSSOverride
	if err := json.Unmarshal([]byte(out), &overrides); err != nil {
		t.Fatalf("decode overrides: %v", err)
	}
	if got := overrides["development"].SourceMap; got == nil || !*got {
		t.Fatalf("expected development sourceMap=true, got %v", got)
	}
}

func TestUnknownEnvironment(t *testing.T) {
	setupCLITestEnv(t)

	out, stderr, err := runCLI(t, "--env", "Staging", "config", "validate")
	if err != nil {
		t.Fatalf("unknown environment should be tolerated: %v", err)
	}
	requireContains(t, out, "Environment: staging")
	requireContains(t, stderr, "unknown environment")
	requireContains(t, stderr, "run_id=")

	_, _, err = runCLI(t, "--env", "staging", "--strict-env", "config", "validate")
	if err == nil {
		t.Fatal("expected strict mode to reject unknown environment")
	}
	requireContains(t, err.Error(), "unknown environment")
}

func TestEnvironmentVariableSelectsEnvironment(t *testing.T) {
	setupCLITestEnv(t)
	t.Setenv("JEKYLLWIND_ENV", "production")

	out, _, err := runCLI(t, "config", "validate")
	if err != nil {
		t.Fatal(err)
	}
	requireContains(t, out, "Environment: production")
}

func TestLogFormatJSON(t *testing.T) {
	setupCLITestEnv(t)
	_, stderr, err := runCLI(t, "--log-format", "json", "--log-level", "debug", "config", "validate")
	if err != nil {
		t.Fatal(err)
	}
	line := strings.SplitN(strings.TrimSpace(stderr), "\n", 2)[0]
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("expected json log line, got %q: %v", stderr, err)
	}
	if entry["msg"] != "config resolved" || entry["run_id"] == "" {
		t.Fatalf("unexpected entry %v", entry)
	}

	if _, _, err := runCLI(t, "--log-format", "xml", "config", "validate"); err == nil {
		t.Fatal("expected bad log format to fail")
	}
}
