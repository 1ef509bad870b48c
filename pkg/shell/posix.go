package shell

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/pathmaster/pkg/pathenv"
)

// Bash, ksh and the generic POSIX fallback share one declaration syntax:
// export PATH=... plain assignments and PATH=$PATH:... additions. They
// differ only in config location and in how loose the detection pattern
// is, so a single parameterized handler serves all three.

var (
	exportRe = regexp.MustCompile(`^\s*export\s+PATH=["']?([^"']*)["']?`)
	// additionRe captures the final segment of PATH=$PATH:<suffix>
	additionRe = regexp.MustCompile(`PATH=.*:([^:"']+)["']?\s*$`)

	bashDetectRe    = regexp.MustCompile(`^\s*(export\s+PATH=|PATH="?\$PATH:)`)
	genericDetectRe = regexp.MustCompile(`^\s*(export\s+)?PATH=`)
)

type posixHandler struct {
	shellType  ShellType
	configPath string
	detectRe   *regexp.Regexp
}

// NewBashHandler returns the handler for bash, editing ~/.bashrc.
func NewBashHandler() Handler {
	return &posixHandler{
		shellType:  Bash,
		configPath: filepath.Join(homeDir(), ".bashrc"),
		detectRe:   bashDetectRe,
	}
}

// NewKshHandler returns the handler for ksh, editing ~/.kshrc.
func NewKshHandler() Handler {
	return &posixHandler{
		shellType:  Ksh,
		configPath: filepath.Join(homeDir(), ".kshrc"),
		detectRe:   bashDetectRe,
	}
}

// NewGenericHandler returns the POSIX fallback handler, editing
// ~/.profile. Its detection also catches unexported PATH= assignments.
func NewGenericHandler() Handler {
	return &posixHandler{
		shellType:  Generic,
		configPath: filepath.Join(homeDir(), ".profile"),
		detectRe:   genericDetectRe,
	}
}

func (h *posixHandler) Type() ShellType {
	return h.shellType
}

func (h *posixHandler) ConfigPath() string {
	return h.configPath
}

func (h *posixHandler) Declarations(content string) []Declaration {
	var decls []Declaration
	for idx, line := range strings.Split(content, "\n") {
		if !h.detectRe.MatchString(line) {
			continue
		}
		kind := KindAssignment
		if strings.Contains(line, "PATH=$PATH:") || strings.Contains(line, `PATH="$PATH:`) {
			kind = KindAddition
		}
		decls = append(decls, Declaration{
			StartLine: idx + 1,
			EndLine:   idx + 1,
			Text:      line,
			Kind:      kind,
		})
	}
	return decls
}

func (h *posixHandler) ParseEntries(text string) []string {
	var entries []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if m := exportRe.FindStringSubmatch(line); m != nil {
			for _, tok := range strings.Split(m[1], ":") {
				if entry, ok := expandToken(tok); ok {
					entries = append(entries, entry)
				}
			}
			continue
		}

		if strings.Contains(line, "PATH=$PATH:") || strings.Contains(line, `PATH="$PATH:`) {
			if m := additionRe.FindStringSubmatch(line); m != nil {
				if entry, ok := expandToken(m[1]); ok {
					entries = append(entries, entry)
				}
			}
		}
	}
	return entries
}

func (h *posixHandler) FormatDeclaration(entries []string) string {
	return fmt.Sprintf("%s\nexport PATH=\"%s\"", updateComment(), strings.Join(entries, ":"))
}

// expandToken normalizes one extracted value. Empty tokens and PATH
// self-references are not directories and yield nothing.
func expandToken(tok string) (string, bool) {
	tok = stripQuotes(strings.TrimSpace(tok))
	if tok == "" || tok == "$PATH" || tok == "${PATH}" {
		return "", false
	}
	return pathenv.Expand(tok), true
}
