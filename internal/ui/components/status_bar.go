package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dbtea/dbtea/internal/ui/theme"
)

// StatusBar renders the bottom status line: mode indicator, focused pane,
// and a transient message or error.
type StatusBar struct {
	Mode    string
	Pane    string
	Message string
	Err     error
	Width   int
	Theme   theme.Theme
}

// View renders the status bar
func (sb *StatusBar) View() string {
	var left string
	if sb.Mode != "" {
		left = sb.modeStyle().Render(" " + sb.Mode + " ")
	}

	paneStyle := lipgloss.NewStyle().Foreground(sb.Theme.TreeCollapsed)
	if sb.Pane != "" {
		left += paneStyle.Render(" " + sb.Pane)
	}

	var right string
	switch {
	case sb.Err != nil:
		right = lipgloss.NewStyle().
			Foreground(sb.Theme.Error).
			Bold(true).
			Render(sb.Err.Error())
	case sb.Message != "":
		right = lipgloss.NewStyle().
			Foreground(sb.Theme.Info).
			Render(sb.Message)
	}

	gap := sb.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}

func (sb *StatusBar) modeStyle() lipgloss.Style {
	color := sb.Theme.ModeNormal
	switch sb.Mode {
	case "INSERT", "EDIT":
		color = sb.Theme.ModeInsert
	case "VISUAL", "COMMAND":
		color = sb.Theme.ModeVisual
	}
	return lipgloss.NewStyle().
		Background(color).
		Foreground(sb.Theme.Background).
		Bold(true)
}
