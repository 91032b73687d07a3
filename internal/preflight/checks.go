package preflight

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"jekyllwind/internal/content"
	"jekyllwind/internal/theme"
)

// Requirement defines an external binary the workflow relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// CheckBinaries looks up each requirement on PATH.
func CheckBinaries(requirements []Requirement) []Result {
	results := make([]Result, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		result := Result{Name: req.Name, Optional: req.Optional}
		switch path, err := exec.LookPath(cmd); {
		case cmd == "":
			result.Detail = "command not configured"
		case err != nil:
			result.Detail = fmt.Sprintf("binary %q not found (%s)", cmd, req.Description)
		default:
			result.Passed = true
			result.Detail = path
		}
		results = append(results, result)
	}
	return results
}

// CheckFileExists verifies that path is a regular file.
func CheckFileExists(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckPortAvailable binds the dev server address briefly to confirm nothing
// else is listening on it.
func CheckPortAvailable(ctx context.Context, host string, port int) Result {
	const name = "Jekyll port"
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	listenCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var lc net.ListenConfig
	ln, err := lc.Listen(listenCtx, "tcp", addr)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s unavailable (%v)", addr, err)}
	}
	_ = ln.Close()
	return Result{Name: name, Passed: true, Detail: addr + " free"}
}

// CheckContentMatches verifies that the globs resolve to at least one file and
// reports include patterns that match nothing.
func CheckContentMatches(name string, fsys fs.FS, include, exclude []string) Result {
	results, err := content.ResolvePatterns(fsys, include, exclude)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	total := 0
	var empty []string
	for _, r := range results {
		total += len(r.Matches)
		if len(r.Matches) == 0 {
			empty = append(empty, r.Pattern)
		}
	}
	if total == 0 {
		return Result{Name: name, Detail: "no files match any content glob"}
	}
	detail := fmt.Sprintf("%d files", total)
	if len(empty) > 0 {
		detail += fmt.Sprintf(" (no matches: %s)", strings.Join(empty, ", "))
	}
	return Result{Name: name, Passed: true, Detail: detail}
}

// CheckThemeCoverage verifies that the theme scans every glob the workflow watches.
func CheckThemeCoverage(th *theme.Config, watch []string) Result {
	const name = "Theme content coverage"
	missing := content.Covers(th.Content, watch)
	if len(missing) > 0 {
		return Result{Name: name, Detail: "theme content does not include " + strings.Join(missing, ", ")}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d watch globs covered", len(watch))}
}
