// Package store exports the derived report to a SQLite database so the
// figures can be queried with ordinary SQL. Money columns hold exact
// decimal strings; only percentages are stored as REAL.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/sjbeckles/fiscboard/internal/metrics"
	"github.com/sjbeckles/fiscboard/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DB is a SQLite export target.
type DB struct {
	db *sql.DB
}

// Open opens or creates the export database at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening export db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the export database.
func (d *DB) Close() error {
	return d.db.Close()
}

// WriteReport replaces the database contents with the given report.
func (d *DB) WriteReport(r *metrics.Report) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"line_items", "findings", "compliance", "soe_transfers", "summary"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	tables := []struct {
		name  string
		items []model.AnnotatedItem
	}{
		{"revenue", r.Revenue},
		{"expenditure", r.Expenditure},
		{"tax_detail", r.TaxDetail},
		{"debt_structure", r.DebtStructure},
		{"debt_service", r.DebtService},
	}
	for _, t := range tables {
		if err := writeItems(tx, t.name, "", t.items); err != nil {
			return err
		}
	}
	for _, sec := range r.BalanceSections {
		if err := writeItems(tx, "balance_sheet", sec.Name, sec.Items); err != nil {
			return err
		}
	}

	for _, f := range r.Data.Findings {
		var amount, note any
		if v, ok := f.Amount.Value(); ok {
			amount = v.String()
		} else {
			note = f.Amount.Reason()
		}
		_, err := tx.Exec(`INSERT INTO findings
			(issue, amount, amount_note, description, impact, severity)
			VALUES (?, ?, ?, ?, ?, ?)`,
			f.Issue, amount, note, f.Description, f.Impact, string(f.Severity))
		if err != nil {
			return err
		}
	}

	for _, c := range r.Data.Compliance {
		_, err := tx.Exec(`INSERT INTO compliance
			(requirement, status, impact, remediation)
			VALUES (?, ?, ?, ?)`,
			c.Requirement, string(c.Status), c.Impact, c.Remediation)
		if err != nil {
			return err
		}
	}

	for _, row := range r.Data.SOETransfers {
		_, err := tx.Exec(`INSERT INTO soe_transfers
			(entity, current_transfer, capital_transfer)
			VALUES (?, ?, ?)`,
			row.Entity, row.CurrentTransfer.String(), row.CapitalTransfer.String())
		if err != nil {
			return err
		}
	}

	summary := []struct {
		metric string
		value  string
	}{
		{"fiscal_year", r.Data.FiscalYear},
		{"statement_date", r.Data.StatementDate},
		{"revenue_total", r.RevenueTotal.TotalCurrent.String()},
		{"expenditure_total", r.ExpenditureTotal.TotalCurrent.String()},
		{"fiscal_balance", r.FiscalBalance.String()},
		{"fiscal_balance_prior", r.FiscalBalancePrior.String()},
		{"total_assets", r.TotalAssets.String()},
		{"total_liabilities", r.TotalLiabilities.String()},
		{"net_position", r.NetPosition.String()},
		{"net_debt", r.NetDebt.String()},
		{"domestic_debt", r.DomesticDebt.TotalCurrent.String()},
		{"foreign_debt", r.ForeignDebt.TotalCurrent.String()},
		{"soe_current_total", r.SOECurrentTotal.String()},
		{"soe_capital_total", r.SOECapitalTotal.String()},
		{"soe_total", r.SOETotal.String()},
	}
	for _, s := range summary {
		if _, err := tx.Exec("INSERT INTO summary (metric, value) VALUES (?, ?)", s.metric, s.value); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func writeItems(tx *sql.Tx, table, section string, items []model.AnnotatedItem) error {
	for _, it := range items {
		_, err := tx.Exec(`INSERT INTO line_items
			(table_name, section, category, budgeted, actual_current, actual_prior,
			 variance, variance_pct, yoy_change, yoy_pct)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			table, section, it.Category,
			decStr(it.Budgeted), it.ActualCurrent.String(), decStr(it.ActualPrior),
			decStr(it.Variance), fltVal(it.VariancePct),
			decStr(it.YoYChange), fltVal(it.YoYPct))
		if err != nil {
			return err
		}
	}
	return nil
}

func decStr(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func fltVal(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// ItemCount returns the number of exported line items.
func (d *DB) ItemCount() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM line_items").Scan(&count)
	return count, err
}

// SummaryValue returns one summary metric by name.
func (d *DB) SummaryValue(metric string) (string, error) {
	var v string
	err := d.db.QueryRow("SELECT value FROM summary WHERE metric = ?", metric).Scan(&v)
	return v, err
}
