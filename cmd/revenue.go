package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sjbeckles/fiscboard/internal/cli"
	"github.com/sjbeckles/fiscboard/internal/metrics"
	"github.com/sjbeckles/fiscboard/internal/model"
)

var revenueCmd = &cobra.Command{
	Use:   "revenue",
	Short: "Revenue by source with budget variances",
	RunE:  runRevenue,
}

func init() {
	rootCmd.AddCommand(revenueCmd)
}

func runRevenue(_ *cobra.Command, _ []string) error {
	r, opts, err := buildReport()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("REVENUE  FY %s", r.Data.CurrentYear)))
	fmt.Println()

	fmt.Print(cli.RenderTable(flowTable("By Source", r, r.Revenue, r.RevenueTotal, opts)))
	fmt.Println()

	fmt.Print(cli.RenderTable(flowTable("Tax Collections", r, r.TaxDetail, opts.engine.Aggregate(itemsOf(r.TaxDetail), nil), opts)))
	fmt.Println()

	fmt.Println("  Top Sources")
	printTopBars(r.TopRevenue(5), opts.unit)
	fmt.Println()

	return nil
}

// flowTable builds the budget-vs-actual table shared by the revenue and
// expenditure commands.
func flowTable(title string, r *metrics.Report, items []model.AnnotatedItem, total model.AggregateMetrics, opts options) cli.Table {
	u := opts.unit

	headers := []string{"Category", "Budgeted", "Actual", "Variance", "Var%"}
	if opts.compare {
		headers = append(headers, r.Data.PriorYear, "YoY%")
	}

	rows := make([][]string, 0, len(items)+2)
	for _, it := range items {
		row := []string{
			it.Category,
			moneyOpt(it.Budgeted, u),
			cli.FormatMoney(it.ActualCurrent, u),
			signedMoneyOpt(it.Variance, u),
			cli.FormatSignedPercent(it.VariancePct),
		}
		if opts.compare {
			row = append(row, moneyOpt(it.ActualPrior, u), cli.FormatSignedPercent(it.YoYPct))
		}
		rows = append(rows, row)
	}

	rows = append(rows, []string{"---"})
	totalRow := []string{
		"Total",
		moneyOpt(total.TotalBudgeted, u),
		cli.FormatMoney(total.TotalCurrent, u),
	}
	if total.TotalBudgeted != nil {
		variance := total.TotalCurrent.Sub(*total.TotalBudgeted)
		totalRow = append(totalRow, cli.FormatSignedMoney(variance, u))
	} else {
		totalRow = append(totalRow, "N/A")
	}
	totalRow = append(totalRow, "")
	if opts.compare {
		totalRow = append(totalRow, moneyOpt(total.TotalPrior, u), cli.FormatSignedPercent(total.ChangePct))
	}
	rows = append(rows, totalRow)

	return cli.Table{Title: title, Headers: headers, Rows: rows}
}

// printTopBars prints a horizontal bar per item, scaled to the largest.
func printTopBars(items []model.AnnotatedItem, u cli.Unit) {
	if len(items) == 0 {
		return
	}
	max := items[0].ActualCurrent.InexactFloat64()
	for _, it := range items {
		bar := cli.RenderHorizontalBar(it.ActualCurrent.InexactFloat64(), max, 30)
		fmt.Printf("  %-28s %-30s %s\n", it.Category, bar, cli.FormatMoney(it.ActualCurrent, u))
	}
}

func itemsOf(items []model.AnnotatedItem) []model.LineItem {
	out := make([]model.LineItem, len(items))
	for i, it := range items {
		out[i] = it.LineItem
	}
	return out
}

func moneyOpt(v *decimal.Decimal, u cli.Unit) string {
	if v == nil {
		return "N/A"
	}
	return cli.FormatMoney(*v, u)
}

func signedMoneyOpt(v *decimal.Decimal, u cli.Unit) string {
	if v == nil {
		return "N/A"
	}
	return cli.FormatSignedMoney(*v, u)
}
