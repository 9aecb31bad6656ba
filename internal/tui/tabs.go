package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/sjbeckles/fiscboard/internal/cli"
	"github.com/sjbeckles/fiscboard/internal/tui/theme"
)

// money formats a value at the app's active unit.
func (a App) money(v decimal.Decimal) string {
	return cli.FormatMoney(v, a.unit)
}

func (a App) moneyP(v *decimal.Decimal) string {
	if v == nil {
		return "N/A"
	}
	return cli.FormatMoney(*v, a.unit)
}

func (a App) signedMoneyP(v *decimal.Decimal) string {
	if v == nil {
		return "N/A"
	}
	return cli.FormatSignedMoney(*v, a.unit)
}

// signColor colors a formatted delta by its leading sign.
func signColor(text string) lipgloss.Color {
	t := theme.Active
	switch {
	case strings.HasPrefix(text, "-"):
		return t.Red
	case strings.HasPrefix(text, "+"):
		return t.Green
	default:
		return t.TextPrimary
	}
}

// gridStyleFn picks the style for a data cell. row and col index into the
// rows passed to renderGrid.
type gridStyleFn func(row, col int, text string) lipgloss.Style

// renderGrid renders a columnar table: first column left-aligned, the rest
// right-aligned, two spaces between columns. The first column shrinks and
// truncates when the natural widths exceed innerW.
func renderGrid(headers []string, rows [][]string, innerW int, styleFor gridStyleFn) string {
	t := theme.Active
	numCols := len(headers)

	widths := make([]int, numCols)
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	// Shrink the label column if the grid overflows
	total := 2 * (numCols - 1)
	for _, w := range widths {
		total += w
	}
	if total > innerW {
		widths[0] -= total - innerW
		if widths[0] < 8 {
			widths[0] = 8
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	defaultStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(headerStyle.Render(pad(h, widths[i], i == 0)))
	}
	for r, row := range rows {
		b.WriteString("\n")
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if i == 0 {
				cell = truncStr(cell, widths[0])
			}
			if i > 0 {
				b.WriteString("  ")
			}
			style := defaultStyle
			if styleFor != nil {
				style = styleFor(r, i, cell)
			}
			b.WriteString(style.Render(pad(cell, widths[i], i == 0)))
		}
	}
	return b.String()
}

func pad(s string, w int, left bool) string {
	if len(s) >= w {
		return s
	}
	fill := strings.Repeat(" ", w-len(s))
	if left {
		return s + fill
	}
	return fill + s
}

// deltaGridStyle colors signed delta columns by sign and leaves the rest
// in primary text. cols lists the delta column indexes.
func deltaGridStyle(cols ...int) gridStyleFn {
	set := map[int]bool{}
	for _, c := range cols {
		set[c] = true
	}
	return func(_, col int, text string) lipgloss.Style {
		if set[col] {
			return lipgloss.NewStyle().Foreground(signColor(text))
		}
		return lipgloss.NewStyle().Foreground(theme.Active.TextPrimary)
	}
}
