package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the column border style based on focus state.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	color := t.Border
	if focused {
		color = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}
