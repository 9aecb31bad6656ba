package tui

import (
	"fmt"
	"strings"

	"github.com/sjbeckles/fiscboard/internal/cli"
	"github.com/sjbeckles/fiscboard/internal/model"
	"github.com/sjbeckles/fiscboard/internal/tui/components"
	"github.com/sjbeckles/fiscboard/internal/tui/theme"
)

func (a App) renderRevenueTab(cw int) string {
	t := theme.Active
	r := a.report
	var b strings.Builder

	// Row 1: metric cards
	taxation := r.Revenue[0]
	for _, it := range r.Revenue {
		if it.Category == "Taxation" {
			taxation = it
			break
		}
	}
	cards := []components.Metric{
		{
			Label: "Total Revenue",
			Value: a.money(r.RevenueTotal.TotalCurrent),
			Delta: fmt.Sprintf("budget %s", a.moneyP(r.RevenueTotal.TotalBudgeted)),
		},
		{
			Label: "Growth",
			Value: cli.FormatSignedPercent(r.RevenueTotal.ChangePct),
			Delta: a.signedMoneyP(r.RevenueTotal.Change),
		},
		{
			Label: "Taxation",
			Value: a.money(taxation.ActualCurrent),
			Delta: fmt.Sprintf("%s vs budget", cli.FormatSignedPercent(taxation.VariancePct)),
		},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: budget vs actual table
	b.WriteString(components.ContentCard("Revenue by Source",
		a.renderFlowGrid(r.Revenue, r.RevenueTotal, components.CardInnerWidth(cw)),
		cw))
	b.WriteString("\n")

	// Row 3: top sources chart + tax detail
	halves := components.LayoutRow(cw, 2)

	top := r.TopRevenue(5)
	entries := make([]components.HBarEntry, len(top))
	for i, it := range top {
		entries[i] = components.HBarEntry{
			Label: truncStr(it.Category, 20),
			Value: it.ActualCurrent.InexactFloat64(),
			Text:  a.money(it.ActualCurrent),
		}
	}
	chartCard := components.ContentCard("Top Sources",
		components.HBarChart(entries, t.Blue, components.CardInnerWidth(halves[0])),
		halves[0])

	taxHeaders := []string{"Tax Head", r.Data.CurrentYear, "YoY%"}
	taxRows := make([][]string, len(r.TaxDetail))
	for i, it := range r.TaxDetail {
		taxRows[i] = []string{
			it.Category,
			a.money(it.ActualCurrent),
			cli.FormatSignedPercent(it.YoYPct),
		}
	}
	taxCard := components.ContentCard("Tax Collections",
		renderGrid(taxHeaders, taxRows, components.CardInnerWidth(halves[1]), deltaGridStyle(2)),
		halves[1])

	b.WriteString(components.CardRow([]string{chartCard, taxCard}))

	return b.String()
}

// renderFlowGrid renders a budget-vs-actual table with a totals row.
func (a App) renderFlowGrid(items []model.AnnotatedItem, total model.AggregateMetrics, innerW int) string {
	headers := []string{"Category", "Budget", "Actual", "Variance", "Var%"}
	if a.showComparison {
		headers = append(headers, a.report.Data.PriorYear, "YoY%")
	}

	rows := make([][]string, 0, len(items)+1)
	for _, it := range items {
		row := []string{
			it.Category,
			a.moneyP(it.Budgeted),
			a.money(it.ActualCurrent),
			a.signedMoneyP(it.Variance),
			cli.FormatSignedPercent(it.VariancePct),
		}
		if a.showComparison {
			row = append(row, a.moneyP(it.ActualPrior), cli.FormatSignedPercent(it.YoYPct))
		}
		rows = append(rows, row)
	}

	variance := total.TotalCurrent
	if total.TotalBudgeted != nil {
		variance = total.TotalCurrent.Sub(*total.TotalBudgeted)
	}
	totalRow := []string{
		"Total",
		a.moneyP(total.TotalBudgeted),
		a.money(total.TotalCurrent),
		cli.FormatSignedMoney(variance, a.unit),
		"",
	}
	if a.showComparison {
		totalRow = append(totalRow, a.moneyP(total.TotalPrior), cli.FormatSignedPercent(total.ChangePct))
	}
	rows = append(rows, totalRow)

	deltaCols := []int{3, 4}
	if a.showComparison {
		deltaCols = append(deltaCols, 6)
	}
	return renderGrid(headers, rows, innerW, deltaGridStyle(deltaCols...))
}
