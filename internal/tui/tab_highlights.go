package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sjbeckles/fiscboard/internal/cli"
	"github.com/sjbeckles/fiscboard/internal/model"
	"github.com/sjbeckles/fiscboard/internal/tui/components"
	"github.com/sjbeckles/fiscboard/internal/tui/theme"
)

func (a App) renderHighlightsTab(cw int) string {
	t := theme.Active
	r := a.report
	var b strings.Builder

	swing := r.FiscalBalance.Sub(r.FiscalBalancePrior)
	cards := []components.Metric{
		{
			Label: "Revenue Growth",
			Value: cli.FormatSignedPercent(r.RevenueTotal.ChangePct),
			Delta: a.signedMoneyP(r.RevenueTotal.Change),
		},
		{
			Label: "Balance Swing",
			Value: cli.FormatSignedMoney(swing, a.unit),
			Delta: fmt.Sprintf("vs %s", r.Data.PriorYear),
		},
		{
			Label: "Debt Change",
			Value: a.signedMoneyP(r.DebtTotal.Change),
			Delta: cli.FormatSignedPercent(r.DebtTotal.ChangePct),
		},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Two-year revenue vs expenditure chart
	vals := []float64{
		r.RevenueTotal.TotalPrior.InexactFloat64(),
		r.RevenueTotal.TotalCurrent.InexactFloat64(),
		r.ExpenditureTotal.TotalPrior.InexactFloat64(),
		r.ExpenditureTotal.TotalCurrent.InexactFloat64(),
	}
	labels := []string{
		"Rev " + r.Data.PriorYear, "Rev " + r.Data.CurrentYear,
		"Exp " + r.Data.PriorYear, "Exp " + r.Data.CurrentYear,
	}
	b.WriteString(components.ContentCard("Revenue vs Expenditure",
		components.BarChart(vals, labels, t.Blue, components.CardInnerWidth(cw), 10),
		cw))
	b.WriteString("\n")

	// Strongest gains and declines across tax heads
	gains := rankByGrowth(r.TaxDetail, true, 5)
	declines := rankByGrowth(r.TaxDetail, false, 5)

	halves := components.LayoutRow(cw, 2)
	gainsCard := components.ContentCard("Strongest Collections",
		a.renderGrowthList(gains, components.CardInnerWidth(halves[0])),
		halves[0])
	declineBody := a.renderGrowthList(declines, components.CardInnerWidth(halves[1]))
	if len(declines) == 0 {
		declineBody = lipgloss.NewStyle().Foreground(t.TextMuted).Render("Every tax head grew year over year.")
	}
	declinesCard := components.ContentCard("Declining Collections", declineBody, halves[1])
	b.WriteString(components.CardRow([]string{gainsCard, declinesCard}))

	return b.String()
}

// rankByGrowth picks the items with the largest (gains) or most negative
// (declines) YoY percentage. Items without a growth figure are skipped.
func rankByGrowth(items []model.AnnotatedItem, gains bool, n int) []model.AnnotatedItem {
	var with []model.AnnotatedItem
	for _, it := range items {
		if it.YoYPct == nil {
			continue
		}
		if gains && *it.YoYPct <= 0 {
			continue
		}
		if !gains && *it.YoYPct >= 0 {
			continue
		}
		with = append(with, it)
	}
	sort.SliceStable(with, func(i, j int) bool {
		if gains {
			return *with[i].YoYPct > *with[j].YoYPct
		}
		return *with[i].YoYPct < *with[j].YoYPct
	})
	if n < len(with) {
		with = with[:n]
	}
	return with
}

func (a App) renderGrowthList(items []model.AnnotatedItem, innerW int) string {
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = []string{
			it.Category,
			a.money(it.ActualCurrent),
			cli.FormatSignedPercent(it.YoYPct),
		}
	}
	return renderGrid([]string{"", "Actual", "YoY%"}, rows, innerW, deltaGridStyle(2))
}
