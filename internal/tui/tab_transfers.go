package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sjbeckles/fiscboard/internal/tui/components"
	"github.com/sjbeckles/fiscboard/internal/tui/theme"
)

func (a App) renderTransfersTab(cw int) string {
	t := theme.Active
	r := a.report
	var b strings.Builder

	cards := []components.Metric{
		{
			Label: "Total Transfers",
			Value: a.money(r.SOETotal),
			Delta: fmt.Sprintf("%d entities", len(r.Data.SOETransfers)),
		},
		{
			Label: "Current",
			Value: a.money(r.SOECurrentTotal),
			Delta: "operating support",
		},
		{
			Label: "Capital",
			Value: a.money(r.SOECapitalTotal),
			Delta: "capital injections",
		},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Table, largest combined transfer first
	rows := make([]struct {
		entity   string
		current  string
		capital  string
		total    string
		totalVal float64
	}, len(r.Data.SOETransfers))
	for i, tr := range r.Data.SOETransfers {
		rows[i].entity = tr.Entity
		rows[i].current = a.money(tr.CurrentTransfer)
		rows[i].capital = a.money(tr.CapitalTransfer)
		rows[i].total = a.money(tr.Total())
		rows[i].totalVal = tr.Total().InexactFloat64()
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].totalVal > rows[j].totalVal
	})

	gridRows := make([][]string, len(rows))
	for i, row := range rows {
		gridRows[i] = []string{row.entity, row.current, row.capital, row.total}
	}
	b.WriteString(components.ContentCard("Transfers to State-Owned Enterprises",
		renderGrid([]string{"Entity", "Current", "Capital", "Total"}, gridRows,
			components.CardInnerWidth(cw), nil),
		cw))
	b.WriteString("\n")

	// Chart of the largest recipients
	limit := 6
	if len(rows) < limit {
		limit = len(rows)
	}
	entries := make([]components.HBarEntry, limit)
	for i := 0; i < limit; i++ {
		entries[i] = components.HBarEntry{
			Label: truncStr(rows[i].entity, 28),
			Value: rows[i].totalVal,
			Text:  rows[i].total,
		}
	}
	b.WriteString(components.ContentCard("Largest Recipients",
		components.HBarChart(entries, t.Cyan, components.CardInnerWidth(cw)),
		cw))

	return b.String()
}
