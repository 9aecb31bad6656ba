package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sjbeckles/fiscboard/internal/cli"
	"github.com/sjbeckles/fiscboard/internal/model"
)

var auditCmd = &cobra.Command{
	Use:     "audit",
	Aliases: []string{"findings"},
	Short:   "Audit findings behind the adverse opinion",
	RunE:    runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func runAudit(_ *cobra.Command, _ []string) error {
	r, opts, err := buildReport()
	if err != nil {
		return err
	}
	u := opts.unit

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("AUDIT FINDINGS  FY %s", r.Data.CurrentYear)))
	fmt.Println()

	fmt.Println("  Opinion: " + cli.SeverityStyle(model.SeverityCritical).Render("ADVERSE"))
	fmt.Println()
	for _, line := range wrapText(r.Data.OpinionBasis, 76) {
		fmt.Println("  " + line)
	}
	fmt.Println()

	sevOrder := []model.Severity{
		model.SeverityCritical, model.SeverityHigh, model.SeverityMedium, model.SeverityLow,
	}
	for _, sev := range sevOrder {
		for _, f := range r.FindingsBySeverity(sev) {
			label := cli.SeverityStyle(f.Severity).Render(strings.ToUpper(string(f.Severity)))
			fmt.Printf("  [%s] %s  %s\n", label, f.Issue, cli.FormatAmount(f.Amount, u))
			for _, line := range wrapText(f.Description, 72) {
				fmt.Println("      " + line)
			}
			fmt.Println("      Impact: " + f.Impact)
			fmt.Println()
		}
	}

	quantified, unquantified := r.QuantifiedFindingsTotal()
	fmt.Printf("  Quantified misstatements: %s (%d findings not quantified)\n",
		cli.FormatMoney(quantified, u), unquantified)
	fmt.Println()

	rows := make([][]string, len(r.Data.Compliance))
	for i, c := range r.Data.Compliance {
		rows[i] = []string{c.Requirement, string(c.Status), c.Impact}
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "IPSAS Compliance",
		Headers: []string{"Requirement", "Status", "Impact"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

// wrapText breaks a paragraph into lines at most width runes long.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
