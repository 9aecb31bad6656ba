package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sjbeckles/fiscboard/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Unit:            %s\n", cfg.Display.Unit)
	fmt.Printf("    Theme:           %s\n", cfg.Display.Theme)
	fmt.Printf("    Show comparison: %v\n", cfg.Display.ShowComparison)
	fmt.Println()

	fmt.Println("  [Metrics]")
	fmt.Printf("    Growth policy: %s\n", cfg.Metrics.GrowthPolicy)
	fmt.Println()

	fmt.Println("  [Export]")
	if cfg.Export.DBPath != "" {
		fmt.Printf("    Database path: %s\n", cfg.Export.DBPath)
	} else {
		fmt.Println("    Database path: not set (defaults to the config directory)")
	}
	fmt.Println()

	fmt.Println("  The TUI settings tab and display keys write back to this file.")
	return nil
}
