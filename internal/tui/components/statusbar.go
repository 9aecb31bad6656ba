package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/sjbeckles/fiscboard/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar with the active display
// unit and the fiscal year on the right.
func RenderStatusBar(width int, unit, fiscalYear string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [u]nit  [c]ompare  [q]uit"
	right := ""
	if unit != "" {
		right = unit
	}
	if fiscalYear != "" {
		if right != "" {
			right += "  |  "
		}
		right += fiscalYear
	}
	if right != "" {
		right = fmt.Sprintf("%s ", right)
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
