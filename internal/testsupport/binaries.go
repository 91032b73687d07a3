package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// DefaultBinaries are the executables the workflow shells out to.
var DefaultBinaries = []string{"bundle", "npx", "jekyll"}

// StubBinaries writes no-op executables for names into a temp directory and
// makes that directory the only PATH entry for the rest of the test. With no
// names, DefaultBinaries are stubbed.
func StubBinaries(t *testing.T, names ...string) string {
	t.Helper()
	if len(names) == 0 {
		names = DefaultBinaries
	}
	binDir := t.TempDir()
	script := []byte("#!/bin/sh\nexit 0\n")
	for _, name := range names {
		target := filepath.Join(binDir, name)
		if err := os.WriteFile(target, script, 0o755); err != nil {
			t.Fatalf("write stub %s: %v", name, err)
		}
	}
	t.Setenv("PATH", binDir)
	return binDir
}
