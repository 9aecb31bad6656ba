package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sjbeckles/fiscboard/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Summary", Key: 's', KeyPos: 0},
	{Name: "Revenue", Key: 'r', KeyPos: 0},
	{Name: "Expenditure", Key: 'e', KeyPos: 0},
	{Name: "Balance", Key: 'b', KeyPos: 0},
	{Name: "Audit", Key: 'a', KeyPos: 0},
	{Name: "Debt", Key: 'd', KeyPos: 0},
	{Name: "Transfers", Key: 't', KeyPos: 0},
	{Name: "Highlights", Key: 'h', KeyPos: 0},
	{Name: "Settings", Key: 'x', KeyPos: -1}, // x is not in "Settings"
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	dimKeyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var parts []string
	for i, tab := range Tabs {
		var rendered string
		if i == activeIdx {
			rendered = activeStyle.Render(tab.Name)
		} else {
			// Render with highlighted shortcut key
			if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
				before := tab.Name[:tab.KeyPos]
				key := string(tab.Name[tab.KeyPos])
				after := tab.Name[tab.KeyPos+1:]
				rendered = inactiveStyle.Render(before) +
					dimKeyStyle.Render("[") + keyStyle.Render(key) + dimKeyStyle.Render("]") +
					inactiveStyle.Render(after)
			} else {
				// Key not in name (e.g., "Settings" with 'x')
				rendered = inactiveStyle.Render(tab.Name) +
					dimKeyStyle.Render("[") + keyStyle.Render(string(tab.Key)) + dimKeyStyle.Render("]")
			}
		}
		parts = append(parts, rendered)
	}

	// Split into two rows if needed
	row1 := strings.Join(parts[:5], "  ")
	row2 := strings.Join(parts[5:], "  ")

	return " " + row1 + "\n " + row2
}

// TabVisualWidth returns the rendered width of a tab. Inactive tabs carry
// two bracket characters around the shortcut letter; tabs whose key is not
// in the name append "[k]" after it.
func TabVisualWidth(tab Tab, active bool) int {
	w := len(tab.Name)
	if active {
		return w
	}
	if tab.KeyPos >= 0 {
		return w + 2
	}
	return w + 3
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
