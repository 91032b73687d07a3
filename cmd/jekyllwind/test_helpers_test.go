package main

import (
	"bytes"
	"net"
	"strconv"
	"strings"
	"testing"
)

type cliTestEnv struct {
	home string
	dir  string
}

// setupCLITestEnv isolates HOME, the working directory and JEKYLLWIND_*
// variables so no real config is picked up.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	env := &cliTestEnv{home: t.TempDir(), dir: t.TempDir()}
	t.Setenv("HOME", env.home)
	t.Setenv("NO_COLOR", "1")
	for _, name := range []string{"JEKYLLWIND_ENV", "JEKYLLWIND_SERVER_JEKYLLPORT", "JEKYLLWIND_SERVER_HOST", "JEKYLLWIND_WORKFLOW_VERBOSE"} {
		t.Setenv(name, "")
	}
	t.Chdir(env.dir)
	return env
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func freePort(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	return strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
