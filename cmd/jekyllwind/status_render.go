package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"jekyllwind/internal/preflight"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

type statusStyle struct {
	label string
	color string
}

const ansiReset = "\x1b[0m"

var statusStyles = map[statusKind]statusStyle{
	statusInfo:  {label: "INFO", color: "\x1b[34m"},
	statusOK:    {label: "OK", color: "\x1b[32m"},
	statusWarn:  {label: "WARN", color: "\x1b[33m"},
	statusError: {label: "ERROR", color: "\x1b[31m"},
}

const (
	checkLabelWidth = 24
	checkIndent     = "  "
)

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	style, ok := statusStyles[kind]
	if !ok {
		style = statusStyles[statusInfo]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s%-*s [%s]", checkIndent, checkLabelWidth, label+":", style.label)
	if message != "" {
		b.WriteString(" " + message)
	}
	if colorize {
		return style.color + b.String() + ansiReset
	}
	return b.String()
}

func renderSectionHeader(title string, colorize bool) []string {
	line := "== " + strings.TrimSpace(title) + " =="
	rule := strings.Repeat("-", len(line))
	if !colorize {
		return []string{line, rule}
	}
	blue := statusStyles[statusInfo].color
	return []string{blue + line + ansiReset, blue + rule + ansiReset}
}

// resultKind maps a check outcome to a status. Optional checks never report
// as errors.
func resultKind(r preflight.Result) statusKind {
	switch {
	case r.Passed:
		return statusOK
	case r.Optional:
		return statusWarn
	default:
		return statusError
	}
}

// checkLines renders a summary line, one line per check and, when required
// checks failed, a closing line naming them.
func checkLines(results []preflight.Result, colorize bool) []string {
	failed := preflight.Failed(results)
	summaryKind := statusOK
	summary := fmt.Sprintf("%d checks passed", len(results))
	if len(failed) > 0 {
		summaryKind = statusError
		summary = fmt.Sprintf("%d of %d checks failed", len(failed), len(results))
	}

	lines := make([]string, 0, len(results)+2)
	lines = append(lines, renderStatusLine("Summary", summaryKind, summary, colorize))
	for _, r := range results {
		detail := r.Detail
		if detail == "" && r.Passed {
			detail = "ready"
		}
		lines = append(lines, renderStatusLine(r.Name, resultKind(r), detail, colorize))
	}
	if len(failed) > 0 {
		names := make([]string, 0, len(failed))
		for _, r := range failed {
			names = append(names, r.Name)
		}
		lines = append(lines, checkIndent+"Failing checks: "+strings.Join(names, ", "))
	}
	return lines
}

func shouldColorize(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
