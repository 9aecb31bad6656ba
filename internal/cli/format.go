// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sjbeckles/fiscboard/internal/model"
)

// Unit selects the scale money is displayed at.
type Unit string

const (
	UnitFull     Unit = "full"
	UnitMillions Unit = "millions"
	UnitBillions Unit = "billions"
)

// ParseUnit maps a config or flag value to a Unit.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitFull, UnitMillions, UnitBillions:
		return Unit(s), nil
	case "":
		return UnitMillions, nil
	}
	return "", fmt.Errorf("unknown unit %q (want full, millions or billions)", s)
}

// Next cycles to the following unit.
func (u Unit) Next() Unit {
	switch u {
	case UnitFull:
		return UnitMillions
	case UnitMillions:
		return UnitBillions
	default:
		return UnitFull
	}
}

// Label returns the display name shown in the status bar.
func (u Unit) Label() string {
	switch u {
	case UnitFull:
		return "BBD"
	case UnitMillions:
		return "BBD Millions"
	case UnitBillions:
		return "BBD Billions"
	}
	return string(u)
}

var (
	million = decimal.NewFromInt(1_000_000)
	billion = decimal.NewFromInt(1_000_000_000)
)

// FormatMoney renders a BBD amount at the given unit.
// e.g. full: "$3,209,934,907", millions: "$3,209.9M", billions: "$3.21B"
func FormatMoney(v decimal.Decimal, u Unit) string {
	if v.Sign() < 0 {
		return "-" + FormatMoney(v.Neg(), u)
	}
	switch u {
	case UnitMillions:
		return "$" + groupDigits(v.Div(million).StringFixed(1)) + "M"
	case UnitBillions:
		return "$" + groupDigits(v.Div(billion).StringFixed(2)) + "B"
	default:
		return "$" + groupDigits(v.StringFixed(0))
	}
}

// FormatMoneyAuto scales by magnitude: billions at $1B and above,
// millions below.
func FormatMoneyAuto(v decimal.Decimal) string {
	if v.Abs().GreaterThanOrEqual(billion) {
		return FormatMoney(v, UnitBillions)
	}
	return FormatMoney(v, UnitMillions)
}

// FormatSignedMoney is FormatMoney with an explicit leading sign.
func FormatSignedMoney(v decimal.Decimal, u Unit) string {
	if v.Sign() < 0 {
		return FormatMoney(v, u)
	}
	return "+" + FormatMoney(v, u)
}

// FormatPercent renders a derived percentage at two decimals. A nil
// percentage is undefined and renders as "N/A", never as 0%.
func FormatPercent(p *float64) string {
	if p == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *p)
}

// FormatSignedPercent is FormatPercent with an explicit leading sign.
func FormatSignedPercent(p *float64) string {
	if p == nil {
		return "N/A"
	}
	return fmt.Sprintf("%+.2f%%", *p)
}

// FormatAmount renders a finding amount, falling back to the auditor's
// wording for unquantified amounts.
func FormatAmount(a model.Amount, u Unit) string {
	if v, ok := a.Value(); ok {
		return FormatMoney(v, u)
	}
	return a.Reason()
}

// groupDigits inserts comma separators into the integer part of a plain
// decimal string. The fraction and sign pass through untouched.
func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	remainder := len(intPart) % 3
	if remainder > 0 {
		b.WriteString(intPart[:remainder])
	}
	for i := remainder; i < len(intPart); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
