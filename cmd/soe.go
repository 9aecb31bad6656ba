package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sjbeckles/fiscboard/internal/cli"
	"github.com/sjbeckles/fiscboard/internal/model"
)

var soeCmd = &cobra.Command{
	Use:     "soe",
	Aliases: []string{"transfers"},
	Short:   "Transfers to state-owned enterprises",
	RunE:    runSOE,
}

func init() {
	rootCmd.AddCommand(soeCmd)
}

func runSOE(_ *cobra.Command, _ []string) error {
	r, opts, err := buildReport()
	if err != nil {
		return err
	}
	u := opts.unit

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SOE TRANSFERS  FY %s", r.Data.CurrentYear)))
	fmt.Println()

	transfers := make([]model.TransferRow, len(r.Data.SOETransfers))
	copy(transfers, r.Data.SOETransfers)
	sort.SliceStable(transfers, func(i, j int) bool {
		return transfers[i].Total().GreaterThan(transfers[j].Total())
	})

	rows := make([][]string, 0, len(transfers)+2)
	for _, tr := range transfers {
		rows = append(rows, []string{
			tr.Entity,
			cli.FormatMoney(tr.CurrentTransfer, u),
			cli.FormatMoney(tr.CapitalTransfer, u),
			cli.FormatMoney(tr.Total(), u),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		cli.FormatMoney(r.SOECurrentTotal, u),
		cli.FormatMoney(r.SOECapitalTotal, u),
		cli.FormatMoney(r.SOETotal, u),
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Entity", "Current", "Capital", "Total"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
