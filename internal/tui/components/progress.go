package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/sjbeckles/fiscboard/internal/tui/theme"
)

// ColorForShare returns green through red as a share of the whole grows.
// Used for stress indicators like debt ratios.
func ColorForShare(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.9:
		return string(t.Red)
	case pct >= 0.7:
		return string(t.Orange)
	case pct >= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// ShareBar renders a labeled bar showing a component's share of a whole.
// pct is 0-1; the fill is clamped to that range but the printed figure
// keeps the real value, which can exceed 100%.
func ShareBar(label string, pct float64, fill lipgloss.Color, labelW, barWidth int) string {
	t := theme.Active

	draw := pct
	if draw < 0 {
		draw = 0
	}
	if draw > 1 {
		draw = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(fill)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(fill).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(draw) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%5.1f%%", pct*100))
}

// StressBar is ShareBar with the fill chosen by stress thresholds.
func StressBar(label string, pct float64, labelW, barWidth int) string {
	return ShareBar(label, pct, lipgloss.Color(ColorForShare(pct)), labelW, barWidth)
}
