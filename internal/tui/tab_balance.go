package tui

import (
	"fmt"
	"strings"

	"github.com/sjbeckles/fiscboard/internal/cli"
	"github.com/sjbeckles/fiscboard/internal/metrics"
	"github.com/sjbeckles/fiscboard/internal/tui/components"
)

func (a App) renderBalanceTab(cw int) string {
	r := a.report
	var b strings.Builder

	cards := []components.Metric{
		{
			Label: "Total Assets",
			Value: a.money(r.TotalAssets),
			Delta: fmt.Sprintf("prior year %s", a.money(r.TotalAssetsPrior)),
		},
		{
			Label: "Total Liabilities",
			Value: a.money(r.TotalLiabilities),
			Delta: fmt.Sprintf("prior year %s", a.money(r.TotalLiabilitiesPrior)),
		},
		{
			Label: "Net Position",
			Value: a.money(r.NetPosition),
			Delta: fmt.Sprintf("prior year %s", a.money(r.NetPositionPrior)),
		},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	halves := components.LayoutRow(cw, 2)
	for i := 0; i+1 < len(r.BalanceSections); i += 2 {
		left := a.renderSectionCard(r.BalanceSections[i], halves[0])
		right := a.renderSectionCard(r.BalanceSections[i+1], halves[1])
		b.WriteString(components.CardRow([]string{left, right}))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (a App) renderSectionCard(sec metrics.AnnotatedSection, outerW int) string {
	headers := []string{"", a.report.Data.CurrentYear}
	if a.showComparison {
		headers = append(headers, a.report.Data.PriorYear, "YoY%")
	}

	rows := make([][]string, 0, len(sec.Items)+1)
	for _, it := range sec.Items {
		row := []string{it.Category, a.money(it.ActualCurrent)}
		if a.showComparison {
			row = append(row, a.moneyP(it.ActualPrior), cli.FormatSignedPercent(it.YoYPct))
		}
		rows = append(rows, row)
	}
	totalRow := []string{"Total", a.money(sec.Total.ActualCurrent)}
	if a.showComparison {
		totalRow = append(totalRow, a.moneyP(sec.Total.ActualPrior), cli.FormatSignedPercent(sec.Total.YoYPct))
	}
	rows = append(rows, totalRow)

	var style gridStyleFn
	if a.showComparison {
		style = deltaGridStyle(3)
	}
	return components.ContentCard(sec.Name,
		renderGrid(headers, rows, components.CardInnerWidth(outerW), style),
		outerW)
}
