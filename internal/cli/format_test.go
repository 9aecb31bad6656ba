package cli

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sjbeckles/fiscboard/internal/model"
)

func TestFormatMoneyUnits(t *testing.T) {
	v := decimal.RequireFromString("3209934907")

	tests := []struct {
		unit Unit
		want string
	}{
		{UnitFull, "$3,209,934,907"},
		{UnitMillions, "$3,209.9M"},
		{UnitBillions, "$3.21B"},
	}
	for _, tc := range tests {
		if got := FormatMoney(v, tc.unit); got != tc.want {
			t.Errorf("FormatMoney(%s, %s) = %q, want %q", v, tc.unit, got, tc.want)
		}
	}
}

func TestFormatMoneyNegative(t *testing.T) {
	v := decimal.RequireFromString("-90224420")

	if got := FormatMoney(v, UnitFull); got != "-$90,224,420" {
		t.Errorf("full = %q", got)
	}
	if got := FormatMoney(v, UnitMillions); got != "-$90.2M" {
		t.Errorf("millions = %q", got)
	}
}

func TestFormatMoneyAuto(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"14930759310", "$14.93B"},
		{"1000000000", "$1.00B"},
		{"568277615", "$568.3M"},
		{"-6858085252", "-$6.86B"},
	}
	for _, tc := range tests {
		v := decimal.RequireFromString(tc.in)
		if got := FormatMoneyAuto(v); got != tc.want {
			t.Errorf("FormatMoneyAuto(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	up := decimal.RequireFromString("232553414")
	if got := FormatSignedMoney(up, UnitMillions); got != "+$232.6M" {
		t.Errorf("positive = %q", got)
	}
	down := decimal.RequireFromString("-47874519")
	if got := FormatSignedMoney(down, UnitMillions); got != "-$47.9M" {
		t.Errorf("negative = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	p := 7.8107
	if got := FormatPercent(&p); got != "7.81%" {
		t.Errorf("FormatPercent = %q", got)
	}
	if got := FormatPercent(nil); got != "N/A" {
		t.Errorf("FormatPercent(nil) = %q, want N/A", got)
	}
	if got := FormatSignedPercent(&p); got != "+7.81%" {
		t.Errorf("FormatSignedPercent = %q", got)
	}
	neg := -310.911
	if got := FormatSignedPercent(&neg); got != "-310.91%" {
		t.Errorf("FormatSignedPercent(neg) = %q", got)
	}
	if got := FormatSignedPercent(nil); got != "N/A" {
		t.Errorf("FormatSignedPercent(nil) = %q, want N/A", got)
	}
}

func TestFormatAmount(t *testing.T) {
	q := model.Quantified(decimal.RequireFromString("719000000"))
	if got := FormatAmount(q, UnitMillions); got != "$719.0M" {
		t.Errorf("quantified = %q", got)
	}
	u := model.Unquantified("Not Quantified")
	if got := FormatAmount(u, UnitMillions); got != "Not Quantified" {
		t.Errorf("unquantified = %q", got)
	}
}

func TestParseUnit(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Unit
	}{
		{"full", UnitFull},
		{"millions", UnitMillions},
		{"billions", UnitBillions},
		{"", UnitMillions},
	} {
		got, err := ParseUnit(tc.in)
		if err != nil {
			t.Fatalf("ParseUnit(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseUnit(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if _, err := ParseUnit("thousands"); err == nil {
		t.Error("ParseUnit accepted unknown unit")
	}
}

func TestUnitCycle(t *testing.T) {
	u := UnitFull
	seen := map[Unit]bool{}
	for i := 0; i < 3; i++ {
		seen[u] = true
		u = u.Next()
	}
	if u != UnitFull || len(seen) != 3 {
		t.Errorf("unit cycle broken: ended at %q after %d distinct units", u, len(seen))
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct{ in, want string }{
		{"123", "123"},
		{"1234", "1,234"},
		{"6696035126", "6,696,035,126"},
		{"3209.9", "3,209.9"},
		{"-1234567", "-1,234,567"},
	}
	for _, tc := range tests {
		if got := groupDigits(tc.in); got != tc.want {
			t.Errorf("groupDigits(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
