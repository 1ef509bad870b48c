// Package style holds the lipgloss styles shared by pathmaster's
// terminal output.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Palette
var (
	SuccessColor = lipgloss.Color("42")
	ErrorColor   = lipgloss.Color("196")
	WarningColor = lipgloss.Color("214")
	PathColor    = lipgloss.Color("39")
	MutedColor   = lipgloss.Color("243")
)

// Base styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Render applies a style when stdout is a terminal and returns the
// plain text otherwise, keeping piped output clean.
func Render(s lipgloss.Style, text string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return text
	}
	return s.Render(text)
}
