package tui

import (
	"fmt"
	"strings"

	"github.com/sjbeckles/fiscboard/internal/cli"
	"github.com/sjbeckles/fiscboard/internal/tui/components"
	"github.com/sjbeckles/fiscboard/internal/tui/theme"
)

func (a App) renderDebtTab(cw int) string {
	t := theme.Active
	r := a.report
	var b strings.Builder

	cards := []components.Metric{
		{
			Label: "Public Debt",
			Value: a.money(r.DebtTotal.TotalCurrent),
			Delta: fmt.Sprintf("%s vs %s", a.signedMoneyP(r.DebtTotal.Change), r.Data.PriorYear),
		},
		{
			Label: "Domestic",
			Value: a.money(r.DomesticDebt.TotalCurrent),
			Delta: fmt.Sprintf("%d instruments", r.DomesticDebt.Count),
		},
		{
			Label: "Foreign",
			Value: a.money(r.ForeignDebt.TotalCurrent),
			Delta: fmt.Sprintf("%d instruments", r.ForeignDebt.Count),
		},
		{
			Label: "Debt Svc/Revenue",
			Value: cli.FormatPercent(r.DebtServiceToRevenuePct),
			Delta: "of total revenue",
		},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Domestic/foreign split bars
	innerW := components.CardInnerWidth(cw)
	barW := innerW - 20
	if barW < 10 {
		barW = 10
	}
	total := r.DebtTotal.TotalCurrent.InexactFloat64()
	var split strings.Builder
	if total > 0 {
		split.WriteString(components.ShareBar("Domestic", r.DomesticDebt.TotalCurrent.InexactFloat64()/total, t.Blue, 10, barW))
		split.WriteString("\n")
		split.WriteString(components.ShareBar("Foreign", r.ForeignDebt.TotalCurrent.InexactFloat64()/total, t.Magenta, 10, barW))
	}
	b.WriteString(components.ContentCard("Composition", split.String(), cw))
	b.WriteString("\n")

	// Debt structure by instrument
	headers := []string{"Instrument", r.Data.CurrentYear}
	if a.showComparison {
		headers = append(headers, r.Data.PriorYear, "Change")
	}
	rows := make([][]string, len(r.DebtStructure))
	for i, it := range r.DebtStructure {
		row := []string{it.Category, a.money(it.ActualCurrent)}
		if a.showComparison {
			row = append(row, a.moneyP(it.ActualPrior), a.signedMoneyP(it.YoYChange))
		}
		rows[i] = row
	}
	var style gridStyleFn
	if a.showComparison {
		style = deltaGridStyle(3)
	}
	b.WriteString(components.ContentCard("Debt by Instrument",
		renderGrid(headers, rows, innerW, style),
		cw))
	b.WriteString("\n")

	// Debt service schedule
	svcHeaders := []string{"", r.Data.CurrentYear, r.Data.PriorYear, "YoY%"}
	svcRows := make([][]string, len(r.DebtService))
	for i, it := range r.DebtService {
		svcRows[i] = []string{
			it.Category,
			a.money(it.ActualCurrent),
			a.moneyP(it.ActualPrior),
			cli.FormatSignedPercent(it.YoYPct),
		}
	}
	b.WriteString(components.ContentCard("Debt Service",
		renderGrid(svcHeaders, svcRows, innerW, deltaGridStyle(3)),
		cw))

	return b.String()
}
