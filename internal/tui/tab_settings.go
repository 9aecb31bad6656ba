package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sjbeckles/fiscboard/internal/config"
	"github.com/sjbeckles/fiscboard/internal/metrics"
	"github.com/sjbeckles/fiscboard/internal/tui/components"
	"github.com/sjbeckles/fiscboard/internal/tui/theme"
)

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	comparison := "off"
	if a.showComparison {
		comparison = "on"
	}
	policy := "absolute prior"
	if a.report.Engine.Policy == metrics.SignedPrior {
		policy = "signed prior"
	}

	innerW := components.CardInnerWidth(cw)
	rows := [][]string{
		{"Currency unit", a.unit.Label(), "u"},
		{"Color theme", theme.Active.Name, "T"},
		{"Prior-year comparison", comparison, "c"},
		{"Growth denominator", policy, "p"},
	}
	settingStyle := func(_, col int, _ string) lipgloss.Style {
		switch col {
		case 1:
			return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
		case 2:
			return lipgloss.NewStyle().Foreground(t.Cyan)
		default:
			return lipgloss.NewStyle().Foreground(t.TextPrimary)
		}
	}
	b.WriteString(components.ContentCard("Preferences",
		renderGrid([]string{"Setting", "Value", "Key"}, rows, innerW, settingStyle),
		cw))
	b.WriteString("\n")

	pathStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	noteStyle := lipgloss.NewStyle().Foreground(t.TextDim).Width(innerW)
	body := pathStyle.Render(config.ConfigPath()) + "\n" +
		noteStyle.Render("Changes made with the keys above are written back immediately. "+
			"Delete the file to rerun the first-launch setup.")
	b.WriteString(components.ContentCard("Configuration File", body, cw))
	b.WriteString("\n")

	themeRows := make([][]string, len(theme.All))
	for i, th := range theme.All {
		marker := ""
		if th.Name == theme.Active.Name {
			marker = "active"
		}
		themeRows[i] = []string{th.Name, marker}
	}
	themeStyle := func(_, col int, text string) lipgloss.Style {
		if col == 1 && text == "active" {
			return lipgloss.NewStyle().Foreground(t.Green).Bold(true)
		}
		return lipgloss.NewStyle().Foreground(t.TextPrimary)
	}
	b.WriteString(components.ContentCard("Available Themes",
		renderGrid([]string{"Theme", ""}, themeRows, innerW, themeStyle),
		cw))
	b.WriteString("\n")

	aboutStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(innerW)
	about := aboutStyle.Render(fmt.Sprintf(
		"fiscboard renders the audited financial statements of the Government of Barbados "+
			"for the fiscal year %s. Figures are the published statements as at %s.",
		a.report.Data.FiscalYear, a.report.Data.StatementDate))
	b.WriteString(components.ContentCard("About", about, cw))

	return b.String()
}
