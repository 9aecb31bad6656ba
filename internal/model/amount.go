package model

import "github.com/shopspring/decimal"

// Amount is a finding amount that is either a quantified monetary value or
// an explicit "not quantified" marker from the auditor. Consumers must
// handle both cases; there is no zero-value fallback for the unquantified
// variant.
type Amount struct {
	value      decimal.Decimal
	quantified bool
	reason     string
}

// Quantified returns an Amount carrying a monetary value.
func Quantified(v decimal.Decimal) Amount {
	return Amount{value: v, quantified: true}
}

// Unquantified returns an Amount the auditor could not express numerically.
// The reason is the source report's wording, e.g. "Not Quantified".
func Unquantified(reason string) Amount {
	return Amount{reason: reason}
}

// Value returns the monetary value and whether the amount is quantified.
func (a Amount) Value() (decimal.Decimal, bool) {
	return a.value, a.quantified
}

// Reason returns the qualitative marker for an unquantified amount.
func (a Amount) Reason() string { return a.reason }

// Severity is the auditor-assigned severity of a finding. It is a label
// attached to the source record and passed through unchanged; the report
// never infers severity from the amount.
type Severity string

// Severity labels as assigned in the audit report.
const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityMedium   Severity = "Medium"
	SeverityLow      Severity = "Low"
)

// Finding is one material misstatement or compliance failure backing the
// adverse audit opinion.
type Finding struct {
	Issue       string
	Amount      Amount
	Description string
	Impact      string
	Severity    Severity
}
