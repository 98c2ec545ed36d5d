// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"errors"
	"os"
	"strings"
	"syscall"
)

// ForMissingSource returns a hint when a guide's source file is absent.
// Mentions the directory that was searched and how to change it.
func ForMissingSource(sourceDir string) string {
	return format("sources are read from " + sourceDir + "; run from the project root or pass --root/--source")
}

// ForUnreadableSource returns a hint for sources that exist but cannot be loaded.
func ForUnreadableSource(err error) string {
	switch {
	case errors.Is(err, os.ErrPermission):
		return format("check read permissions on the source file")
	case err != nil && strings.Contains(err.Error(), "UTF-8"):
		return format("save the file with UTF-8 encoding")
	}
	return ""
}

// ForWriteFailure returns hints for output write errors.
// Distinguishes permission problems and full disks from other failures.
func ForWriteFailure(err error) string {
	var hints []string

	if errors.Is(err, os.ErrPermission) {
		hints = append(hints, "check the output directory is writable")
	}
	if errors.Is(err, syscall.ENOSPC) {
		hints = append(hints, "free disk space on the output volume")
	}
	if errors.Is(err, syscall.ENOTDIR) {
		hints = append(hints, "a file is in the way of the output directory")
	}
	if len(hints) == 0 {
		return ForOutputDirectory()
	}

	return formatHints(hints)
}

// ForUnmappedRunes returns a hint for text the core PDF font cannot encode.
func ForUnmappedRunes() string {
	return format("stick to Windows-1252 characters, for example \"->\" instead of an arrow")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-guidepdf/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains go-guidepdf) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-guidepdf") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
