package formatter

import (
	"fmt"
	"strings"

	"github.com/brunovale/prancheta/internal/board"
	"github.com/charmbracelet/lipgloss"
)

const boardColumnWidth = 26

// FormatBoard renders the Kanban projection as side-by-side columns.
func FormatBoard(b *board.Board) string {
	title := NodeKindLabel(b.Node.Type) + " " + Bold(b.Node.Name)
	if len(b.Columns) == 0 {
		return title + "\n" + Dim("No statuses in this project yet.")
	}

	rendered := make([]string, 0, len(b.Columns))
	for _, col := range b.Columns {
		rendered = append(rendered, renderColumn(col))
	}

	return title + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderColumn(col board.Column) string {
	colStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1).
		Width(boardColumnWidth)

	var b strings.Builder
	b.WriteString(StatusDot(col.Status))
	b.WriteString(Dim(fmt.Sprintf(" %d", len(col.Tasks))))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(strings.Repeat("─", boardColumnWidth-2)))
	b.WriteString("\n")

	if len(col.Tasks) == 0 {
		b.WriteString(Dim("empty"))
	}
	for _, t := range col.Tasks {
		name := t.Name
		if runes := []rune(name); len(runes) > boardColumnWidth-8 {
			name = string(runes[:boardColumnWidth-9]) + "…"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", progressMark(t.ProgressValue()), StyleFg.Render(name)))
	}

	return colStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func progressMark(pct int) string {
	switch {
	case pct == 100:
		return StyleGreen.Render("✓")
	case pct > 0:
		return StyleYellow.Render(fmt.Sprintf("%2d", pct))
	default:
		return StyleDim.Render("·")
	}
}
