package shell

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Zsh configs declare PATH three ways: a single-line path=(...) array,
// a multi-line path+=( ... ) block closed by a line holding only ")",
// and plain export PATH= assignments. Array scans run before the
// assignment scan so an array wins anchor ties.

var (
	zshArrayLineRe = regexp.MustCompile(`^\s*path\+?=\((.*)\)`)
	zshBlockOpenRe = regexp.MustCompile(`^\s*path\+?=\(\s*$`)
	zshBlockEndRe  = regexp.MustCompile(`^\s*\)\s*$`)
	zshExportRe    = regexp.MustCompile(`^\s*export\s+PATH=`)
)

type zshHandler struct {
	configPath string
}

// NewZshHandler returns the handler for zsh, editing ~/.zshrc.
func NewZshHandler() Handler {
	return &zshHandler{configPath: filepath.Join(homeDir(), ".zshrc")}
}

func (h *zshHandler) Type() ShellType {
	return Zsh
}

func (h *zshHandler) ConfigPath() string {
	return h.configPath
}

func (h *zshHandler) Declarations(content string) []Declaration {
	lines := strings.Split(content, "\n")
	var decls []Declaration

	// Array declarations first, tracking multi-line blocks as one range.
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if zshBlockOpenRe.MatchString(line) {
			end := i
			for j := i + 1; j < len(lines); j++ {
				if zshBlockEndRe.MatchString(lines[j]) {
					end = j
					break
				}
			}
			if end > i {
				decls = append(decls, Declaration{
					StartLine: i + 1,
					EndLine:   end + 1,
					Text:      strings.Join(lines[i:end+1], "\n"),
					Kind:      KindArrayBlock,
				})
				i = end
			}
			continue
		}
		if zshArrayLineRe.MatchString(line) {
			decls = append(decls, Declaration{
				StartLine: i + 1,
				EndLine:   i + 1,
				Text:      line,
				Kind:      KindArrayLiteral,
			})
		}
	}

	// Then standalone export PATH= assignments.
	for idx, line := range lines {
		if zshExportRe.MatchString(line) {
			decls = append(decls, Declaration{
				StartLine: idx + 1,
				EndLine:   idx + 1,
				Text:      line,
				Kind:      KindAssignment,
			})
		}
	}

	return decls
}

func (h *zshHandler) ParseEntries(text string) []string {
	lines := strings.Split(text, "\n")
	var entries []string

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if zshBlockOpenRe.MatchString(line) {
			for j := i + 1; j < len(lines); j++ {
				if zshBlockEndRe.MatchString(lines[j]) {
					i = j
					break
				}
				if entry, ok := expandToken(lines[j]); ok {
					entries = append(entries, entry)
				}
			}
			continue
		}

		if m := zshArrayLineRe.FindStringSubmatch(line); m != nil {
			for _, tok := range strings.Fields(m[1]) {
				if entry, ok := expandToken(tok); ok {
					entries = append(entries, entry)
				}
			}
		}
	}

	return entries
}

func (h *zshHandler) FormatDeclaration(entries []string) string {
	return fmt.Sprintf("path=(%s) && export PATH %s", strings.Join(entries, " "), updateComment())
}
