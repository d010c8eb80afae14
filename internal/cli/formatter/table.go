package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders a simple aligned table with a header separator line.
// Headers are rendered with the Header style. Columns are padded to the
// maximum width found in each column across both headers and rows.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)

	// Measure visible width so ANSI-styled cells still align.
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2

	var b strings.Builder
	writeCell := func(col int, raw, rendered string) {
		b.WriteString(rendered)
		if col < cols-1 {
			pad := widths[col] - lipgloss.Width(raw)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}

	for i, h := range headers {
		writeCell(i, h, StyleHeader.Render(h))
	}
	b.WriteString("\n")

	for i, w := range widths {
		sep := strings.Repeat("─", w)
		writeCell(i, sep, StyleDim.Render(sep))
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			writeCell(i, cell, cell)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
