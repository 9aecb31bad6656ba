package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sjbeckles/fiscboard/internal/cli"
	"github.com/sjbeckles/fiscboard/internal/model"
)

var highlightsCmd = &cobra.Command{
	Use:   "highlights",
	Short: "Year-over-year performance highlights",
	RunE:  runHighlights,
}

func init() {
	rootCmd.AddCommand(highlightsCmd)
}

func runHighlights(_ *cobra.Command, _ []string) error {
	r, opts, err := buildReport()
	if err != nil {
		return err
	}
	u := opts.unit

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PERFORMANCE  FY %s vs FY %s", r.Data.CurrentYear, r.Data.PriorYear)))
	fmt.Println()

	swing := r.FiscalBalance.Sub(r.FiscalBalancePrior)
	rows := [][]string{
		{"Revenue Growth", cli.FormatSignedPercent(r.RevenueTotal.ChangePct), signedMoneyOpt(r.RevenueTotal.Change, u)},
		{"Expenditure Growth", cli.FormatSignedPercent(r.ExpenditureTotal.ChangePct), signedMoneyOpt(r.ExpenditureTotal.Change, u)},
		{"Balance Swing", "", cli.FormatSignedMoney(swing, u)},
		{"Debt Change", cli.FormatSignedPercent(r.DebtTotal.ChangePct), signedMoneyOpt(r.DebtTotal.Change, u)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Growth", "Amount"},
		Rows:    rows,
	}))
	fmt.Println()

	printGrowthRanking("Strongest Collections", r.TaxDetail, true, u)
	printGrowthRanking("Declining Collections", r.TaxDetail, false, u)

	return nil
}

func printGrowthRanking(title string, items []model.AnnotatedItem, gains bool, u cli.Unit) {
	ranked := rankGrowth(items, gains, 5)
	if len(ranked) == 0 {
		return
	}

	rows := make([][]string, len(ranked))
	for i, it := range ranked {
		rows[i] = []string{
			it.Category,
			cli.FormatMoney(it.ActualCurrent, u),
			cli.FormatSignedPercent(it.YoYPct),
		}
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"Tax Head", "Actual", "YoY%"},
		Rows:    rows,
	}))
	fmt.Println()
}

func rankGrowth(items []model.AnnotatedItem, gains bool, n int) []model.AnnotatedItem {
	var with []model.AnnotatedItem
	for _, it := range items {
		if it.YoYPct == nil {
			continue
		}
		if (gains && *it.YoYPct > 0) || (!gains && *it.YoYPct < 0) {
			with = append(with, it)
		}
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
