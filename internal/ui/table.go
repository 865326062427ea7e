package ui

import (
	"strings"
	"unicode/utf8"
)

// TableBuilder collects rows and renders a formatted table.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

// NewTableBuilder returns a builder with preallocated rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AddRow appends a row to the table.
func (builder *TableBuilder) AddRow(row ...string) {
	builder.rows = append(builder.rows, row)
}

// String renders the table output.
func (builder *TableBuilder) String() string {
	return FormatTable(builder.headers, builder.rows)
}

// FormatTable renders headers and rows as an aligned table. Cells may span
// several lines; continuation lines are aligned under their column. The last
// column is never padded.
func FormatTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = displayWidth(normalizeTableCell(header))
	}

	splitRows := make([][][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([][]string, len(row))
		for i, cell := range row {
			cells[i] = splitCell(cell)
			if i >= len(widths) {
				continue
			}
			for _, line := range cells[i] {
				if width := displayWidth(line); width > widths[i] {
					widths[i] = width
				}
			}
		}
		splitRows = append(splitRows, cells)
	}

	var builder strings.Builder
	writeLine := func(cells []string) {
		var line strings.Builder
		for i, cell := range cells {
			line.WriteString(cell)
			if i == len(cells)-1 {
				break
			}
			padding := 0
			if i < len(widths) {
				padding = widths[i] - displayWidth(cell)
			}
			line.WriteString(strings.Repeat(" ", padding+2))
		}
		builder.WriteString(strings.TrimRight(line.String(), " "))
		builder.WriteByte('\n')
	}

	headerCells := make([]string, len(headers))
	for i, header := range headers {
		headerCells[i] = normalizeTableCell(header)
	}
	writeLine(headerCells)

	for _, cells := range splitRows {
		height := 1
		for _, lines := range cells {
			height = max(height, len(lines))
		}
		for lineIndex := 0; lineIndex < height; lineIndex++ {
			line := make([]string, len(cells))
			for i, lines := range cells {
				if lineIndex < len(lines) {
					line[i] = lines[lineIndex]
				}
			}
			writeLine(line)
		}
	}

	return builder.String()
}

func splitCell(value string) []string {
	value = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\t", " ").Replace(value)
	return strings.Split(value, "\n")
}

func displayWidth(value string) int {
	return utf8.RuneCountInString(stripANSICodes(value))
}

func normalizeTableCell(value string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
}

func stripANSICodes(input string) string {
	var builder strings.Builder
	inEscape := false
	for i := 0; i < len(input); i++ {
		char := input[i]
		if inEscape {
			if char == 'm' {
				inEscape = false
			}
			continue
		}
		if char == '\x1b' {
			inEscape = true
			continue
		}
		builder.WriteByte(char)
	}
	return builder.String()
}
