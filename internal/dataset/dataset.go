// Package dataset holds the figures extracted from the Auditor General's
// report on the Government of Barbados financial statements for the year
// ended March 31, 2023. The tables are source data; every derived figure
// (variance, growth, rollups) is computed by the metrics package.
package dataset

import (
	"github.com/shopspring/decimal"

	"github.com/sjbeckles/fiscboard/internal/model"
)

// Dataset is the complete set of source tables for one report year.
// New returns a fresh value on every call; callers own the lifetime and
// nothing in this package is mutable shared state.
type Dataset struct {
	FiscalYear    string
	StatementDate string
	CurrentYear   string
	PriorYear     string

	Revenue     []model.LineItem
	Expenditure []model.LineItem

	CurrentAssets       model.BalanceSection
	NonCurrentAssets    model.BalanceSection
	CurrentLiabilities  model.BalanceSection
	LongTermLiabilities model.BalanceSection

	TaxDetail     []model.LineItem
	DebtStructure []model.LineItem
	DebtService   []model.LineItem
	SOETransfers  []model.TransferRow

	Findings   []model.Finding
	Compliance []model.ComplianceIssue

	OpinionBasis string
}

// Category keys used for headline metrics. Rows are always located by
// these keys, never by table position.
const (
	CategoryTaxation         = "Taxation"
	CategoryGrants           = "Grants"
	CategoryDebtService      = "Debt Service"
	CategoryCapitalTransfers = "Capital Transfers"
	CategoryTaxReceivables   = "Tax Receivables (Net)"
	CategoryFinancialAssets  = "Financial Assets"
)

// DomesticDebtTypes lists the debt-structure rows counted as domestic debt
// in the domestic/foreign split.
var DomesticDebtTypes = []string{
	"Local Loans Act",
	"Treasury Bills",
	"Savings Bond Act",
	"Ways & Means (Overdraft)",
}

// bbd parses a BBD amount literal. The literals below are transcribed from
// the source report, so a malformed one is a programming error.
func bbd(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// bbdP is bbd for optional (pointer) columns.
func bbdP(s string) *decimal.Decimal {
	d := bbd(s)
	return &d
}

// flow builds a line item for a performance table (budget + both actuals).
func flow(category, budgeted, actual, prior string) model.LineItem {
	return model.LineItem{
		Category:      category,
		Budgeted:      bbdP(budgeted),
		ActualCurrent: bbd(actual),
		ActualPrior:   bbdP(prior),
	}
}

// stock builds a line item for a position table (both actuals, no budget).
func stock(category, actual, prior string) model.LineItem {
	return model.LineItem{
		Category:      category,
		ActualCurrent: bbd(actual),
		ActualPrior:   bbdP(prior),
	}
}
