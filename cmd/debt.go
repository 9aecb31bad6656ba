package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sjbeckles/fiscboard/internal/cli"
)

var debtCmd = &cobra.Command{
	Use:   "debt",
	Short: "Public debt structure and debt service",
	RunE:  runDebt,
}

func init() {
	rootCmd.AddCommand(debtCmd)
}

func runDebt(_ *cobra.Command, _ []string) error {
	r, opts, err := buildReport()
	if err != nil {
		return err
	}
	u := opts.unit

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PUBLIC DEBT  FY %s", r.Data.CurrentYear)))
	fmt.Println()

	total := r.DebtTotal.TotalCurrent
	fmt.Printf("  Total: %s", cli.FormatMoney(total, u))
	if opts.compare && r.DebtTotal.Change != nil {
		fmt.Printf("  (%s vs %s)", signedMoneyOpt(r.DebtTotal.Change, u), r.Data.PriorYear)
	}
	fmt.Println()
	fmt.Println()

	if total.Sign() > 0 {
		domesticPct := r.DomesticDebt.TotalCurrent.Div(total).InexactFloat64() * 100
		foreignPct := r.ForeignDebt.TotalCurrent.Div(total).InexactFloat64() * 100
		fmt.Printf("  Domestic  %s  %s\n", cli.RenderShareBar(domesticPct, 30), cli.FormatMoney(r.DomesticDebt.TotalCurrent, u))
		fmt.Printf("  Foreign   %s  %s\n", cli.RenderShareBar(foreignPct, 30), cli.FormatMoney(r.ForeignDebt.TotalCurrent, u))
		fmt.Println()
	}

	headers := []string{"Instrument", r.Data.CurrentYear}
	if opts.compare {
		headers = append(headers, r.Data.PriorYear, "Change")
	}
	rows := make([][]string, 0, len(r.DebtStructure)+2)
	for _, it := range r.DebtStructure {
		row := []string{it.Category, cli.FormatMoney(it.ActualCurrent, u)}
		if opts.compare {
			row = append(row, moneyOpt(it.ActualPrior, u), signedMoneyOpt(it.YoYChange, u))
		}
		rows = append(rows, row)
	}
	rows = append(rows, []string{"---"})
	totalRow := []string{"Total", cli.FormatMoney(total, u)}
	if opts.compare {
		totalRow = append(totalRow, moneyOpt(r.DebtTotal.TotalPrior, u), signedMoneyOpt(r.DebtTotal.Change, u))
	}
	rows = append(rows, totalRow)
	fmt.Print(cli.RenderTable(cli.Table{Title: "By Instrument", Headers: headers, Rows: rows}))
	fmt.Println()

	svcRows := make([][]string, len(r.DebtService))
	for i, it := range r.DebtService {
		svcRows[i] = []string{
			it.Category,
			cli.FormatMoney(it.ActualCurrent, u),
			moneyOpt(it.ActualPrior, u),
			cli.FormatSignedPercent(it.YoYPct),
		}
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Debt Service",
		Headers: []string{"", r.Data.CurrentYear, r.Data.PriorYear, "YoY%"},
		Rows:    svcRows,
	}))

	fmt.Printf("\n  Debt service takes %s of revenue\n\n", cli.FormatPercent(r.DebtServiceToRevenuePct))

	return nil
}
