package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))

	cellStyle = lipgloss.NewStyle()

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// Table is a bordered text table for console output. The first column is
// left-aligned, the rest right-aligned (they hold amounts).
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Render draws the table as a string.
func (t Table) Render() string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(titleStyle.Render(t.Title))
		b.WriteString("\n")
	}

	headerCells := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		headerCells[i] = headerStyle.Render(pad(h, widths[i], i == 0))
	}
	b.WriteString(strings.Join(headerCells, "  "))
	b.WriteString("\n")

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = dimStyle.Render(strings.Repeat("-", w))
	}
	b.WriteString(strings.Join(rule, "  "))
	b.WriteString("\n")

	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cellStyle.Render(pad(cell, widths[i], i == 0))
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteString("\n")
	}

	return b.String()
}

func pad(s string, width int, leftAlign bool) string {
	if len(s) >= width {
		return s
	}
	fill := strings.Repeat(" ", width-len(s))
	if leftAlign {
		return s + fill
	}
	return fill + s
}
