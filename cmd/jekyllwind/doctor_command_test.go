package main

import (
	"testing"

	"jekyllwind/internal/testsupport"
)

func TestDoctorReadySite(t *testing.T) {
	setupCLITestEnv(t)
	testsupport.StubBinaries(t)
	root := testsupport.NewSite(t)
	t.Setenv("JEKYLLWIND_SERVER_HOST", "127.0.0.1")
	t.Setenv("JEKYLLWIND_SERVER_JEKYLLPORT", freePort(t))

	out, _, err := runCLI(t, "doctor", "--root", root)
	if err != nil {
		t.Fatalf("doctor: %v\n%s", err, out)
	}
	requireContains(t, out, "== jekyllwind doctor (development) ==")
	requireContains(t, out, "[OK]")
	requireContains(t, out, "All required checks passed")
}

func TestDoctorReportsFailures(t *testing.T) {
	setupCLITestEnv(t)
	testsupport.StubBinaries(t, "bundle", "npx")
	root := testsupport.NewSite(t, "tailwind.config.js")
	t.Setenv("JEKYLLWIND_SERVER_HOST", "127.0.0.1")
	t.Setenv("JEKYLLWIND_SERVER_JEKYLLPORT", freePort(t))

	out, _, err := runCLI(t, "doctor", "--root", root)
	if err == nil {
		t.Fatal("expected doctor to fail")
	}
	requireContains(t, err.Error(), "1 of")
	requireContains(t, out, "[ERROR]")
	requireContains(t, out, "[WARN]")
}
