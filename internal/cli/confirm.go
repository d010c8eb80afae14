package cli

import (
	"github.com/brunovale/prancheta/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func pranchetaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// confirmDestructive asks before an irreversible delete. Forced or
// non-interactive runs proceed without asking.
func (a *App) confirmDestructive(title string, force bool) (bool, error) {
	if force || !a.interactive() {
		return true, nil
	}

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Delete").
				Negative("Keep").
				Value(&confirmed),
		),
	).WithTheme(pranchetaHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
