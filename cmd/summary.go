// Package cmd implements the fiscboard CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sjbeckles/fiscboard/internal/cli"
	"github.com/sjbeckles/fiscboard/internal/model"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Headline fiscal position and audit outcome",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	r, opts, err := buildReport()
	if err != nil {
		return err
	}
	u := opts.unit

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BARBADOS FINANCIAL STATEMENTS  FY %s", r.Data.CurrentYear)))
	fmt.Println()

	balanceLabel := "Fiscal Surplus"
	if r.FiscalBalance.Sign() < 0 {
		balanceLabel = "Fiscal Deficit"
	}

	rows := [][]string{
		{"Total Revenue", cli.FormatMoney(r.RevenueTotal.TotalCurrent, u)},
		{"Total Expenditure", cli.FormatMoney(r.ExpenditureTotal.TotalCurrent, u)},
		{balanceLabel, cli.FormatMoney(r.FiscalBalance.Abs(), u)},
		{"---"},
		{"Total Assets", cli.FormatMoney(r.TotalAssets, u)},
		{"Total Liabilities", cli.FormatMoney(r.TotalLiabilities, u)},
		{"Net Position", cli.FormatMoney(r.NetPosition, u)},
		{"---"},
		{"Public Debt", cli.FormatMoney(r.DebtTotal.TotalCurrent, u)},
		{"Net Debt", cli.FormatMoney(r.NetDebt, u)},
		{"Liabilities/Assets", cli.FormatPercent(r.LiabilitiesToAssetsPct)},
		{"Debt Service/Revenue", cli.FormatPercent(r.DebtServiceToRevenuePct)},
	}

	if opts.compare {
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Revenue Growth", cli.FormatSignedPercent(r.RevenueTotal.ChangePct)})
		rows = append(rows, []string{"Expenditure Growth", cli.FormatSignedPercent(r.ExpenditureTotal.ChangePct)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	quantified, unquantified := r.QuantifiedFindingsTotal()
	critical := len(r.FindingsBySeverity(model.SeverityCritical))
	fmt.Println()
	fmt.Println("  Audit opinion: " + cli.SeverityStyle(model.SeverityCritical).Render("ADVERSE"))
	fmt.Printf("  %d findings (%d critical), quantified misstatements %s, %d not quantified\n",
		len(r.Data.Findings), critical, cli.FormatMoney(quantified, u), unquantified)
	fmt.Println()

	return nil
}
