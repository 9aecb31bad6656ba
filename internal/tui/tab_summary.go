package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sjbeckles/fiscboard/internal/cli"
	"github.com/sjbeckles/fiscboard/internal/model"
	"github.com/sjbeckles/fiscboard/internal/tui/components"
	"github.com/sjbeckles/fiscboard/internal/tui/theme"
)

func (a App) renderSummaryTab(cw int) string {
	t := theme.Active
	r := a.report
	var b strings.Builder

	// Row 1: headline metric cards
	balanceLabel := "Surplus"
	if r.FiscalBalance.Sign() < 0 {
		balanceLabel = "Deficit"
	}

	cards := []components.Metric{
		{
			Label: "Total Revenue",
			Value: a.money(r.RevenueTotal.TotalCurrent),
			Delta: fmt.Sprintf("%s vs %s", cli.FormatSignedPercent(r.RevenueTotal.ChangePct), r.Data.PriorYear),
		},
		{
			Label: "Total Expenditure",
			Value: a.money(r.ExpenditureTotal.TotalCurrent),
			Delta: fmt.Sprintf("%s vs %s", cli.FormatSignedPercent(r.ExpenditureTotal.ChangePct), r.Data.PriorYear),
		},
		{
			Label: balanceLabel,
			Value: a.money(r.FiscalBalance.Abs()),
			Delta: fmt.Sprintf("prior year %s", a.money(r.FiscalBalancePrior.Abs())),
		},
		{
			Label: "Net Debt",
			Value: a.money(r.NetDebt),
			Delta: fmt.Sprintf("prior year %s", a.money(r.NetDebtPrior)),
		},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: adverse opinion notice
	innerW := components.CardInnerWidth(cw)
	warnStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(innerW)

	critical := len(r.FindingsBySeverity(model.SeverityCritical))
	quantified, unquantified := r.QuantifiedFindingsTotal()

	opinion := warnStyle.Render("ADVERSE OPINION") + "\n" +
		bodyStyle.Render(r.Data.OpinionBasis) + "\n" +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Render(fmt.Sprintf(
			"%d findings (%d critical) · quantified misstatements %s · %d not quantified",
			len(r.Data.Findings), critical, a.money(quantified), unquantified))

	b.WriteString(components.ContentCard("Auditor General's Report", opinion, cw))
	b.WriteString("\n")

	// Row 3: fiscal position + key ratios
	halves := components.LayoutRow(cw, 2)

	posRows := [][]string{
		{"Total Assets", a.money(r.TotalAssets), a.money(r.TotalAssetsPrior)},
		{"Total Liabilities", a.money(r.TotalLiabilities), a.money(r.TotalLiabilitiesPrior)},
		{"Net Position", a.money(r.NetPosition), a.money(r.NetPositionPrior)},
		{"Net Debt", a.money(r.NetDebt), a.money(r.NetDebtPrior)},
	}
	posHeaders := []string{"", r.Data.CurrentYear, r.Data.PriorYear}
	if !a.showComparison {
		posHeaders = posHeaders[:2]
		for i := range posRows {
			posRows[i] = posRows[i][:2]
		}
	}
	posCard := components.ContentCard("Financial Position",
		renderGrid(posHeaders, posRows, components.CardInnerWidth(halves[0]), nil),
		halves[0])

	ratioInner := components.CardInnerWidth(halves[1])
	barW := ratioInner - 32
	if barW < 10 {
		barW = 10
	}
	var ratios strings.Builder
	ratios.WriteString(components.StressBar("Liabilities/Assets", ratioShare(r.LiabilitiesToAssetsPct), 22, barW))
	ratios.WriteString("\n")
	ratios.WriteString(components.StressBar("Debt Svc/Revenue", ratioShare(r.DebtServiceToRevenuePct), 22, barW))
	ratios.WriteString("\n")
	ratios.WriteString(components.StressBar("Tax Recv/Assets", ratioShare(r.TaxReceivablesToAssetsPct), 22, barW))
	ratioCard := components.ContentCard("Key Ratios", ratios.String(), halves[1])

	b.WriteString(components.CardRow([]string{posCard, ratioCard}))

	return b.String()
}

// ratioShare converts a headline percentage to a 0-1 bar fill.
func ratioShare(pct *float64) float64 {
	if pct == nil {
		return 0
	}
	return *pct / 100
}
