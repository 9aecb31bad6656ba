package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sjbeckles/fiscboard/internal/cli"
	"github.com/sjbeckles/fiscboard/internal/config"
	"github.com/sjbeckles/fiscboard/internal/dataset"
	"github.com/sjbeckles/fiscboard/internal/metrics"
)

var (
	flagUnit         string
	flagNoCompare    bool
	flagGrowthPolicy string
)

var rootCmd = &cobra.Command{
	Use:   "fiscboard",
	Short: "Barbados Government Financial Statements CLI",
	Long:  "Explore the audited Financial Statements of the Government of Barbados: revenue, expenditure, balance sheet, public debt, and the audit findings behind the adverse opinion.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUnit, "unit", "u", "", "Display unit: full, millions or billions (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCompare, "no-compare", false, "Hide prior-year comparison columns")
	rootCmd.PersistentFlags().StringVar(&flagGrowthPolicy, "growth-policy", "", "Growth denominator: absolute or signed (default from config)")
}

// options are the presentation settings shared by all commands, merged
// from the config file and the persistent flags. Flags win.
type options struct {
	unit    cli.Unit
	compare bool
	engine  metrics.Engine
	cfg     config.Config
}

func loadOptions() (options, error) {
	cfg, err := config.Load()
	if err != nil {
		return options{}, err
	}

	unitStr := cfg.Display.Unit
	if flagUnit != "" {
		unitStr = flagUnit
	}
	unit, err := cli.ParseUnit(unitStr)
	if err != nil {
		return options{}, err
	}

	policyStr := cfg.Metrics.GrowthPolicy
	if flagGrowthPolicy != "" {
		policyStr = flagGrowthPolicy
	}
	policy, err := metrics.ParseGrowthPolicy(policyStr)
	if err != nil {
		return options{}, err
	}

	compare := cfg.Display.ShowComparison
	if flagNoCompare {
		compare = false
	}

	return options{
		unit:    unit,
		compare: compare,
		engine:  metrics.NewEngine(policy),
		cfg:     cfg,
	}, nil
}

// buildReport is the shared derivation path used by all commands.
func buildReport() (*metrics.Report, options, error) {
	opts, err := loadOptions()
	if err != nil {
		return nil, options{}, err
	}
	r, err := metrics.BuildReport(dataset.New(), opts.engine)
	if err != nil {
		return nil, opts, err
	}
	return r, opts, nil
}
