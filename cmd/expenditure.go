package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sjbeckles/fiscboard/internal/cli"
)

var expenditureCmd = &cobra.Command{
	Use:     "expenditure",
	Aliases: []string{"spending"},
	Short:   "Expenditure by category with budget variances",
	RunE:    runExpenditure,
}

func init() {
	rootCmd.AddCommand(expenditureCmd)
}

func runExpenditure(_ *cobra.Command, _ []string) error {
	r, opts, err := buildReport()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("EXPENDITURE  FY %s", r.Data.CurrentYear)))
	fmt.Println()

	fmt.Print(cli.RenderTable(flowTable("By Category", r, r.Expenditure, r.ExpenditureTotal, opts)))
	fmt.Println()

	fmt.Println("  Largest Lines")
	printTopBars(r.TopExpenditure(5), opts.unit)
	fmt.Println()

	// Flag the worst budget overrun
	var worst int = -1
	for i, it := range r.Expenditure {
		if it.VariancePct == nil {
			continue
		}
		if worst < 0 || *it.VariancePct > *r.Expenditure[worst].VariancePct {
			worst = i
		}
	}
	if worst >= 0 && *r.Expenditure[worst].VariancePct > 0 {
		it := r.Expenditure[worst]
		fmt.Printf("  Largest overrun: %s at %s over budget\n",
			it.Category, cli.FormatSignedPercent(it.VariancePct))
		fmt.Println()
	}

	return nil
}
