package ui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	internalstrings "github.com/amonks/propdemo/internal/strings"
)

// Wrap normalizes whitespace in each paragraph and wraps it to width.
// Paragraphs are separated by blank lines.
func Wrap(value string, width int) string {
	value = strings.TrimSpace(internalstrings.NormalizeNewlines(value))
	if value == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}

	var wrapped []string
	for _, paragraph := range strings.Split(value, "\n\n") {
		normalized := internalstrings.NormalizeWhitespace(paragraph)
		if normalized == "" {
			continue
		}
		wrapped = append(wrapped, wordwrap.String(normalized, width))
	}
	return strings.Join(wrapped, "\n\n")
}
