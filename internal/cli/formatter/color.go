package formatter

import (
	"fmt"
	"strings"

	"github.com/brunovale/prancheta/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityBadge returns a colored priority marker such as "▲ high".
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("▲ high")
	case domain.PriorityMedium:
		return StyleYellow.Render("● medium")
	case domain.PriorityLow:
		return StyleBlue.Render("▽ low")
	default:
		return StyleDim.Render("-")
	}
}

// StatusDot renders a dot in the status's own hex color followed by its name.
func StatusDot(s *domain.Status) string {
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(s.ColorHex)).Render("●")
	return dot + " " + s.Name
}

// NodeKindLabel renders the node type tag the way the board headers show it.
func NodeKindLabel(t domain.NodeType) string {
	switch t {
	case domain.NodeFolder:
		return StylePurple.Render("[pasta]")
	case domain.NodeSprint:
		return StyleBlue.Render("[sprint]")
	default:
		return StyleGreen.Render("[lista]")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
