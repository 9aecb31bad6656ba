// Package model defines domain types for the financial statements report.
package model

import "github.com/shopspring/decimal"

// LineItem is one named entry of a financial table: a budgeted amount
// (flow tables only), the current-year actual, and the prior-year actual.
// Budgeted and ActualPrior are nil where the source table has no such column.
type LineItem struct {
	Category      string
	Budgeted      *decimal.Decimal
	ActualCurrent decimal.Decimal
	ActualPrior   *decimal.Decimal
}

// HasBudget reports whether the item carries a budgeted amount.
func (it LineItem) HasBudget() bool { return it.Budgeted != nil }

// HasPrior reports whether the item carries a prior-year actual.
func (it LineItem) HasPrior() bool { return it.ActualPrior != nil }

// DerivedMetrics holds the per-item figures computed from a LineItem.
// A nil percentage means the denominator was zero or absent; it renders
// as "N/A", never as 0% or an infinity.
type DerivedMetrics struct {
	Variance    *decimal.Decimal
	VariancePct *float64
	YoYChange   *decimal.Decimal
	YoYPct      *float64
}

// AnnotatedItem pairs a line item with its derived metrics.
type AnnotatedItem struct {
	LineItem
	DerivedMetrics
}

// AggregateMetrics holds exact rollups over a selected set of line items.
// TotalBudgeted and TotalPrior are nil unless every selected item carries
// the corresponding column.
type AggregateMetrics struct {
	Count         int
	TotalBudgeted *decimal.Decimal
	TotalCurrent  decimal.Decimal
	TotalPrior    *decimal.Decimal
	Change        *decimal.Decimal
	ChangePct     *float64
}

// BalanceSection is one section of a position statement: the section total
// as printed in the source, plus its component rows. Category names are
// unique within a section (the statement repeats "Financial Assets" across
// sections, so lookups are always section-scoped).
type BalanceSection struct {
	Name  string
	Total LineItem
	Items []LineItem
}

// Item returns the section row with the given category name.
func (s BalanceSection) Item(category string) (LineItem, bool) {
	for _, it := range s.Items {
		if it.Category == category {
			return it, true
		}
	}
	return LineItem{}, false
}

// TransferRow is one state-owned enterprise transfer entry.
// Total is derived (current + capital), not stored.
type TransferRow struct {
	Entity          string
	CurrentTransfer decimal.Decimal
	CapitalTransfer decimal.Decimal
}

// Total returns the combined current and capital transfer.
func (r TransferRow) Total() decimal.Decimal {
	return r.CurrentTransfer.Add(r.CapitalTransfer)
}

// ComplianceIssue is one IPSAS compliance failure from the audit report.
type ComplianceIssue struct {
	Requirement string
	Status      ComplianceStatus
	Impact      string
	Remediation string
}

// ComplianceStatus is the source report's compliance verdict.
type ComplianceStatus string

// Compliance verdicts as printed in the audit report.
const (
	NotCompliant       ComplianceStatus = "Not Compliant"
	PartiallyCompliant ComplianceStatus = "Partially Compliant"
)
