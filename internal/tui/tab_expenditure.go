package tui

import (
	"fmt"
	"strings"

	"github.com/sjbeckles/fiscboard/internal/cli"
	"github.com/sjbeckles/fiscboard/internal/tui/components"
	"github.com/sjbeckles/fiscboard/internal/tui/theme"
)

func (a App) renderExpenditureTab(cw int) string {
	t := theme.Active
	r := a.report
	var b strings.Builder

	// Worst overrun by variance percentage
	worst := r.Expenditure[0]
	for _, it := range r.Expenditure {
		if it.VariancePct != nil && (worst.VariancePct == nil || *it.VariancePct > *worst.VariancePct) {
			worst = it
		}
	}

	cards := []components.Metric{
		{
			Label: "Total Expenditure",
			Value: a.money(r.ExpenditureTotal.TotalCurrent),
			Delta: fmt.Sprintf("budget %s", a.moneyP(r.ExpenditureTotal.TotalBudgeted)),
		},
		{
			Label: "Growth",
			Value: cli.FormatSignedPercent(r.ExpenditureTotal.ChangePct),
			Delta: a.signedMoneyP(r.ExpenditureTotal.Change),
		},
		{
			Label: "Largest Overrun",
			Value: truncStr(worst.Category, 24),
			Delta: fmt.Sprintf("%s vs budget", cli.FormatSignedPercent(worst.VariancePct)),
		},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	b.WriteString(components.ContentCard("Expenditure by Category",
		a.renderFlowGrid(r.Expenditure, r.ExpenditureTotal, components.CardInnerWidth(cw)),
		cw))
	b.WriteString("\n")

	top := r.TopExpenditure(6)
	entries := make([]components.HBarEntry, len(top))
	for i, it := range top {
		entries[i] = components.HBarEntry{
			Label: truncStr(it.Category, 28),
			Value: it.ActualCurrent.InexactFloat64(),
			Text:  a.money(it.ActualCurrent),
		}
	}
	b.WriteString(components.ContentCard("Largest Lines",
		components.HBarChart(entries, t.Orange, components.CardInnerWidth(cw)),
		cw))

	return b.String()
}
