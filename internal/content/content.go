// Package content resolves the content globs shared by the workflow config and
// the theme record into the concrete files Tailwind would scan.
package content

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Split separates "!"-negated globs from the rest. Leading "./" is removed from
// both so the patterns are relative to an fs.FS root.
func Split(globs []string) (include, exclude []string) {
	for _, glob := range globs {
		glob = strings.TrimSpace(glob)
		if glob == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(glob, "!"); ok {
			exclude = append(exclude, clean(rest))
			continue
		}
		include = append(include, clean(glob))
	}
	return include, exclude
}

func clean(glob string) string {
	return strings.TrimPrefix(strings.TrimSpace(glob), "./")
}

// Matcher tests single paths against include and exclude globs.
type Matcher struct {
	include []string
	exclude []string
}

// NewMatcher builds a matcher. Negated entries in include are treated as
// excludes. Every pattern is validated up front.
func NewMatcher(include, exclude []string) (*Matcher, error) {
	inc, neg := Split(include)
	exc, _ := Split(exclude)
	exc = append(exc, neg...)
	for _, pattern := range slices.Concat(inc, exc) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}
	return &Matcher{include: inc, exclude: exc}, nil
}

// Match reports whether name is matched by an include pattern and by no
// exclude pattern. name is slash separated and relative to the site root.
func (m *Matcher) Match(name string) bool {
	name = path.Clean(clean(name))
	return m.matchesAny(m.include, name) && !m.Excluded(name)
}

// Excluded reports whether name is matched by an exclude pattern.
func (m *Matcher) Excluded(name string) bool {
	return m.matchesAny(m.exclude, path.Clean(clean(name)))
}

func (m *Matcher) matchesAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if doublestar.MatchUnvalidated(pattern, name) {
			return true
		}
	}
	return false
}

// PatternResult lists the files one include pattern resolved to after
// exclusions.
type PatternResult struct {
	Pattern string
	Matches []string
}

// ResolvePatterns expands each include pattern over fsys separately.
func ResolvePatterns(fsys fs.FS, include, exclude []string) ([]PatternResult, error) {
	m, err := NewMatcher(include, exclude)
	if err != nil {
		return nil, err
	}
	results := make([]PatternResult, 0, len(m.include))
	for _, pattern := range m.include {
		found, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		kept := found[:0]
		for _, name := range found {
			if !m.Excluded(name) {
				kept = append(kept, name)
			}
		}
		slices.Sort(kept)
		results = append(results, PatternResult{Pattern: pattern, Matches: kept})
	}
	return results, nil
}

// Resolve returns the sorted, de-duplicated set of files matched by include
// and not matched by exclude.
func Resolve(fsys fs.FS, include, exclude []string) ([]string, error) {
	results, err := ResolvePatterns(fsys, include, exclude)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, r := range results {
		files = append(files, r.Matches...)
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// Covers reports the patterns in want that are missing from have, comparing
// cleaned include patterns. It is used to check that the theme scans every
// file the workflow watches.
func Covers(have, want []string) []string {
	haveInc, _ := Split(have)
	wantInc, _ := Split(want)
	var missing []string
	for _, pattern := range wantInc {
		if !slices.Contains(haveInc, pattern) {
			missing = append(missing, pattern)
		}
	}
	return missing
}
