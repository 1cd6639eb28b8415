package theme

import "github.com/charmbracelet/lipgloss"

// DefaultTheme returns the default dark theme
func DefaultTheme() Theme {
	return Theme{
		Name: "default",

		Background: lipgloss.Color("235"),
		Foreground: lipgloss.Color("252"),

		Border:        lipgloss.Color("240"),
		BorderFocused: lipgloss.Color("62"),
		Selection:     lipgloss.Color("237"),
		Cursor:        lipgloss.Color("248"),

		Success: lipgloss.Color("42"),
		Warning: lipgloss.Color("220"),
		Error:   lipgloss.Color("196"),
		Info:    lipgloss.Color("75"),

		TableHeader:      lipgloss.Color("62"),
		TableRowSelected: lipgloss.Color("237"),

		TreeExpanded:  lipgloss.Color("75"),
		TreeCollapsed: lipgloss.Color("244"),
		TreeLeaf:      lipgloss.Color("252"),

		ModeNormal: lipgloss.Color("75"),
		ModeInsert: lipgloss.Color("42"),
		ModeVisual: lipgloss.Color("220"),
	}
}
