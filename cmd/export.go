package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sjbeckles/fiscboard/internal/config"
	"github.com/sjbeckles/fiscboard/internal/store"
)

var flagDBPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the derived report to a SQLite database",
	Long:  "Writes every annotated line item, finding, and headline figure to a SQLite database for ad-hoc SQL queries. Running export again replaces the previous contents.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagDBPath, "db", "", "Database path (default from config, else the config directory)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	r, opts, err := buildReport()
	if err != nil {
		return err
	}

	dbPath := flagDBPath
	if dbPath == "" {
		dbPath = opts.cfg.Export.DBPath
	}
	if dbPath == "" {
		dbPath = filepath.Join(config.ConfigDir(), "fiscboard.db")
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.WriteReport(r); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	count, err := db.ItemCount()
	if err != nil {
		return err
	}

	fmt.Printf("  Exported %d line items to %s\n", count, dbPath)
	return nil
}
