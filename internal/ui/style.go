package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// ansiEnabled reports whether styled output should be written to stdout.
var ansiEnabled = func() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Heading renders a section heading.
func Heading(value string) string {
	return render(headingStyle, value)
}

// Muted renders secondary text such as placeholders.
func Muted(value string) string {
	return render(mutedStyle, value)
}

// HighlightSelected joins names with ", ", highlighting the selected ones.
func HighlightSelected(names []string, selected []string) string {
	chosen := make(map[string]bool, len(selected))
	for _, name := range selected {
		chosen[name] = true
	}

	parts := make([]string, len(names))
	for i, name := range names {
		if chosen[name] {
			parts[i] = render(selectedStyle, name)
			continue
		}
		parts[i] = name
	}
	return strings.Join(parts, ", ")
}

func render(style lipgloss.Style, value string) string {
	if value == "" || !ansiEnabled() {
		return value
	}
	return style.Render(value)
}
