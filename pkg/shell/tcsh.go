package shell

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	tcshSetenvRe  = regexp.MustCompile(`^\s*setenv\s+PATH\s+(\S+)`)
	tcshSetPathRe = regexp.MustCompile(`^\s*set\s+path\s*=\s*\((.*)\)`)
	tcshDetectRe  = regexp.MustCompile(`^\s*(setenv\s+PATH\s|set\s+path\s*=)`)
)

type tcshHandler struct {
	configPath string
}

// NewTcshHandler returns the handler for tcsh and csh, editing ~/.tcshrc.
func NewTcshHandler() Handler {
	return &tcshHandler{configPath: filepath.Join(homeDir(), ".tcshrc")}
}

func (h *tcshHandler) Type() ShellType {
	return Tcsh
}

func (h *tcshHandler) ConfigPath() string {
	return h.configPath
}

func (h *tcshHandler) Declarations(content string) []Declaration {
	var decls []Declaration
	for idx, line := range strings.Split(content, "\n") {
		if tcshDetectRe.MatchString(line) {
			decls = append(decls, Declaration{
				StartLine: idx + 1,
				EndLine:   idx + 1,
				Text:      line,
				Kind:      KindSetEnv,
			})
		}
	}
	return decls
}

// ParseEntries prefers set path = (...) lines; setenv PATH lines are
// only consulted when no array form is present, since a well-formed
// tcsh config (and our own rendered block) declares both with the same
// entries.
func (h *tcshHandler) ParseEntries(text string) []string {
	var fromArray, fromSetenv []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if m := tcshSetPathRe.FindStringSubmatch(line); m != nil {
			for _, tok := range strings.Fields(m[1]) {
				if entry, ok := expandToken(tok); ok {
					fromArray = append(fromArray, entry)
				}
			}
			continue
		}

		if m := tcshSetenvRe.FindStringSubmatch(line); m != nil {
			for _, tok := range strings.Split(m[1], ":") {
				if entry, ok := expandToken(tok); ok {
					fromSetenv = append(fromSetenv, entry)
				}
			}
		}
	}

	if len(fromArray) > 0 {
		return fromArray
	}
	return fromSetenv
}

func (h *tcshHandler) FormatDeclaration(entries []string) string {
	return fmt.Sprintf("%s\nset path = (%s)\nsetenv PATH %s",
		updateComment(),
		strings.Join(entries, " "),
		strings.Join(entries, ":"))
}
