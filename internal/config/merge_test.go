package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"jekyllwind/internal/config"
)

func ptr[T any](v T) *T { return &v }

func TestMergeOverrideEmptyKeepsBase(t *testing.T) {
	base := config.Default().CSS
	got := config.MergeOverride(base, config.CSSOverride{})
	if diff := cmp.Diff(base, got); diff != "" {
		t.Fatalf("empty override changed base (-base +got):\n%s", diff)
	}
	if !(config.CSSOverride{}).IsEmpty() {
		t.Fatal("expected zero override to be empty")
	}
}

func TestMergeOverrideReplacesOnlyPresentKeys(t *testing.T) {
	base := config.Default().CSS
	override := config.CSSOverride{
		Output: ptr("./_site/tailwind.css"),
		Minify: ptr(true),
	}
	got := config.MergeOverride(base, override)

	want := base
	want.Output = "./_site/tailwind.css"
	want.Minify = true
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected merge (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"output", "minify"}, override.Keys()); diff != "" {
		t.Fatalf("unexpected keys (-want +got):\n%s", diff)
	}
}

func TestMergeOverrideIsShallow(t *testing.T) {
	base := config.Default().CSS
	// Only debounce is given, so the sibling enabled flag drops to its zero
	// value instead of keeping the base's true.
	override := config.CSSOverride{Watch: &config.CSSWatch{Debounce: 250}}
	got := config.MergeOverride(base, override)

	if got.Watch.Debounce != 250 {
		t.Fatalf("expected debounce 250, got %d", got.Watch.Debounce)
	}
	if got.Watch.Enabled {
		t.Fatal("expected nested record to be replaced wholesale")
	}
	if got.Production != base.Production {
		t.Fatal("untouched sub-record should keep base value")
	}
}

func TestMergeOverrideDoesNotMutateInputs(t *testing.T) {
	cfg := config.Default()
	before := cfg.Clone()
	_ = config.MergeOverride(cfg.CSS, cfg.Environments["production"].CSS)
	if diff := cmp.Diff(before, cfg); diff != "" {
		t.Fatalf("merge mutated declaration:\n%s", diff)
	}
}
