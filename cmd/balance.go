package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sjbeckles/fiscboard/internal/cli"
	"github.com/sjbeckles/fiscboard/internal/metrics"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Statement of financial position",
	RunE:  runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(_ *cobra.Command, _ []string) error {
	r, opts, err := buildReport()
	if err != nil {
		return err
	}
	u := opts.unit

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FINANCIAL POSITION  as at %s", r.Data.StatementDate)))
	fmt.Println()

	for _, sec := range r.BalanceSections {
		fmt.Print(cli.RenderTable(sectionTable(r, sec, opts)))
		fmt.Println()
	}

	rows := [][]string{
		{"Total Assets", cli.FormatMoney(r.TotalAssets, u)},
		{"Total Liabilities", cli.FormatMoney(r.TotalLiabilities, u)},
		{"Net Position", cli.FormatMoney(r.NetPosition, u)},
		{"Net Debt", cli.FormatMoney(r.NetDebt, u)},
	}
	if opts.compare {
		rows[0] = append(rows[0], cli.FormatMoney(r.TotalAssetsPrior, u))
		rows[1] = append(rows[1], cli.FormatMoney(r.TotalLiabilitiesPrior, u))
		rows[2] = append(rows[2], cli.FormatMoney(r.NetPositionPrior, u))
		rows[3] = append(rows[3], cli.FormatMoney(r.NetDebtPrior, u))
	}
	headers := []string{"Position", r.Data.CurrentYear}
	if opts.compare {
		headers = append(headers, r.Data.PriorYear)
	}
	fmt.Print(cli.RenderTable(cli.Table{Title: "Totals", Headers: headers, Rows: rows}))
	fmt.Println()

	return nil
}

func sectionTable(r *metrics.Report, sec metrics.AnnotatedSection, opts options) cli.Table {
	u := opts.unit

	headers := []string{"Item", r.Data.CurrentYear}
	if opts.compare {
		headers = append(headers, r.Data.PriorYear, "YoY%")
	}

	rows := make([][]string, 0, len(sec.Items)+2)
	for _, it := range sec.Items {
		row := []string{it.Category, cli.FormatMoney(it.ActualCurrent, u)}
		if opts.compare {
			row = append(row, moneyOpt(it.ActualPrior, u), cli.FormatSignedPercent(it.YoYPct))
		}
		rows = append(rows, row)
	}
	rows = append(rows, []string{"---"})
	totalRow := []string{"Total", cli.FormatMoney(sec.Total.ActualCurrent, u)}
	if opts.compare {
		totalRow = append(totalRow, moneyOpt(sec.Total.ActualPrior, u), cli.FormatSignedPercent(sec.Total.YoYPct))
	}
	rows = append(rows, totalRow)

	return cli.Table{Title: sec.Name, Headers: headers, Rows: rows}
}
