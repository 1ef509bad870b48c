package shell

import (
	"os"
	"strings"
	"time"
)

// Handler implements per-shell-family knowledge of PATH declarations.
// All methods are pure text functions: malformed input degrades to zero
// declarations or zero entries, never an error.
type Handler interface {
	// Type returns the shell family this handler serves.
	Type() ShellType

	// ConfigPath returns the default startup file for the family,
	// e.g. ~/.bashrc or ~/.config/fish/config.fish.
	ConfigPath() string

	// Declarations locates every PATH declaration in the content, in
	// discovery order (family-specific scans before generic ones).
	Declarations(content string) []Declaration

	// ParseEntries extracts directory entries from declaration text.
	// Entries are expanded (~ and $VAR resolved) on the way out.
	ParseEntries(text string) []string

	// FormatDeclaration renders a fresh declaration block for the
	// entries, annotated with a timestamped comment. The block carries
	// no leading or trailing newline.
	FormatDeclaration(entries []string) string
}

// Detect selects the handler matching a shell identifier, usually the
// value of $SHELL. Matching is by substring in priority order; anything
// unrecognized falls back to the generic POSIX handler.
func Detect(shellVar string) Handler {
	switch {
	case strings.Contains(shellVar, "zsh"):
		return NewZshHandler()
	case strings.Contains(shellVar, "bash"):
		return NewBashHandler()
	case strings.Contains(shellVar, "fish"):
		return NewFishHandler()
	case strings.Contains(shellVar, "csh"):
		// covers tcsh and plain csh
		return NewTcshHandler()
	case strings.Contains(shellVar, "ksh"):
		return NewKshHandler()
	default:
		return NewGenericHandler()
	}
}

const timestampLayout = "2006-01-02 15:04:05"

// updateComment is the marker line written above (or beside) every
// declaration this tool renders.
func updateComment() string {
	return "# Updated by pathmaster on " + time.Now().Format(timestampLayout)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "/"
	}
	return home
}

// stripQuotes removes surrounding single or double quotes from a token.
func stripQuotes(tok string) string {
	return strings.Trim(tok, `"'`)
}
