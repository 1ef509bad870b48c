// Package pathenv provides helpers for the PATH environment variable:
// expansion of shorthand paths, reading and writing the current
// session's entries, and order-preserving deduplication.
package pathenv

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves a leading ~ and any environment variable references
// in a path string, returning an absolute form.
func Expand(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				return home
			}
			return filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}

// Entries returns the current PATH entries for this process.
func Entries() []string {
	value := os.Getenv("PATH")
	if value == "" {
		return nil
	}
	return filepath.SplitList(value)
}

// Join renders entries back into a single PATH value.
func Join(entries []string) string {
	return strings.Join(entries, string(os.PathListSeparator))
}

// Set replaces the PATH environment variable for the current process.
// The change lasts until process exit; persisting it into a shell
// startup file is the shell package's job.
func Set(entries []string) error {
	return os.Setenv("PATH", Join(entries))
}

// Dedupe removes duplicate entries while preserving the first
// occurrence order.
func Dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
