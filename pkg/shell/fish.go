package shell

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	fishAddRe    = regexp.MustCompile(`^\s*fish_add_path\s+(.+)$`)
	fishSetRe    = regexp.MustCompile(`^\s*set\s+-gx\s+PATH\s+(.+)$`)
	fishDetectRe = regexp.MustCompile(`^\s*(fish_add_path\s|set\s+-gx\s+PATH|set\s+-e\s+PATH)`)
)

type fishHandler struct {
	configPath string
}

// NewFishHandler returns the handler for fish, editing
// ~/.config/fish/config.fish.
func NewFishHandler() Handler {
	return &fishHandler{
		configPath: filepath.Join(homeDir(), ".config", "fish", "config.fish"),
	}
}

func (h *fishHandler) Type() ShellType {
	return Fish
}

func (h *fishHandler) ConfigPath() string {
	return h.configPath
}

func (h *fishHandler) Declarations(content string) []Declaration {
	var decls []Declaration
	for idx, line := range strings.Split(content, "\n") {
		if fishDetectRe.MatchString(line) {
			decls = append(decls, Declaration{
				StartLine: idx + 1,
				EndLine:   idx + 1,
				Text:      line,
				Kind:      KindFishPath,
			})
		}
	}
	return decls
}

func (h *fishHandler) ParseEntries(text string) []string {
	var entries []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if m := fishAddRe.FindStringSubmatch(line); m != nil {
			if entry, ok := expandToken(m[1]); ok {
				entries = append(entries, entry)
			}
			continue
		}

		if m := fishSetRe.FindStringSubmatch(line); m != nil {
			for _, tok := range strings.Fields(m[1]) {
				if entry, ok := expandToken(tok); ok {
					entries = append(entries, entry)
				}
			}
		}
	}
	return entries
}

func (h *fishHandler) FormatDeclaration(entries []string) string {
	var b strings.Builder
	b.WriteString(updateComment())
	b.WriteString("\nset -e PATH")
	for _, entry := range entries {
		b.WriteString("\nfish_add_path ")
		b.WriteString(entry)
	}
	return b.String()
}
