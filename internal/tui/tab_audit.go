package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sjbeckles/fiscboard/internal/model"
	"github.com/sjbeckles/fiscboard/internal/tui/components"
	"github.com/sjbeckles/fiscboard/internal/tui/theme"
)

func severityColor(sev model.Severity) lipgloss.Color {
	t := theme.Active
	switch sev {
	case model.SeverityCritical:
		return t.Red
	case model.SeverityHigh:
		return t.Orange
	case model.SeverityMedium:
		return t.Yellow
	default:
		return t.Blue
	}
}

func (a App) renderAuditTab(cw int) string {
	t := theme.Active
	r := a.report
	var b strings.Builder

	quantified, unquantified := r.QuantifiedFindingsTotal()
	cards := []components.Metric{
		{
			Label: "Findings",
			Value: fmt.Sprintf("%d", len(r.Data.Findings)),
			Delta: fmt.Sprintf("%d critical", len(r.FindingsBySeverity(model.SeverityCritical))),
		},
		{
			Label: "Quantified Misstatements",
			Value: a.money(quantified),
			Delta: fmt.Sprintf("%d not quantified", unquantified),
		},
		{
			Label: "Opinion",
			Value: "ADVERSE",
			Delta: r.Data.StatementDate,
		},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Findings, one card each, colored by severity
	innerW := components.CardInnerWidth(cw)
	sevOrder := []model.Severity{
		model.SeverityCritical, model.SeverityHigh, model.SeverityMedium, model.SeverityLow,
	}
	for _, sev := range sevOrder {
		for _, f := range r.FindingsBySeverity(sev) {
			sevStyle := lipgloss.NewStyle().Foreground(severityColor(f.Severity)).Bold(true)
			amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
			descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(innerW)

			amount := f.Amount.Reason()
			if v, ok := f.Amount.Value(); ok {
				amount = a.money(v)
			}

			body := sevStyle.Render(strings.ToUpper(string(f.Severity))) +
				lipgloss.NewStyle().Foreground(t.TextDim).Render("  ·  ") +
				amountStyle.Render(amount) + "\n" +
				descStyle.Render(f.Description) + "\n" +
				lipgloss.NewStyle().Foreground(t.TextDim).Render("Impact: "+f.Impact)

			b.WriteString(components.ContentCard(f.Issue, body, cw))
			b.WriteString("\n")
		}
	}

	// IPSAS compliance table
	compHeaders := []string{"IPSAS Requirement", "Status", "Impact"}
	compRows := make([][]string, len(r.Data.Compliance))
	for i, c := range r.Data.Compliance {
		compRows[i] = []string{c.Requirement, string(c.Status), c.Impact}
	}
	compStyle := func(row, col int, text string) lipgloss.Style {
		if col == 1 {
			if text == string(model.PartiallyCompliant) {
				return lipgloss.NewStyle().Foreground(t.Yellow)
			}
			return lipgloss.NewStyle().Foreground(t.Red)
		}
		return lipgloss.NewStyle().Foreground(t.TextPrimary)
	}
	b.WriteString(components.ContentCard("IPSAS Compliance",
		renderGrid(compHeaders, compRows, innerW, compStyle),
		cw))

	return b.String()
}
