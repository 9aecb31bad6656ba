package metrics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sjbeckles/fiscboard/internal/model"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func decP(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d := dec(t, s)
	return &d
}

func wantDec(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(t, want)) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

func wantDecP(t *testing.T, name string, got *decimal.Decimal, want string) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s is nil, want %s", name, want)
	}
	wantDec(t, name, *got, want)
}

// pct2 rounds a derived percentage to two decimals for comparison against
// figures transcribed from the printed report.
func pct2(t *testing.T, name string, got *float64) float64 {
	t.Helper()
	if got == nil {
		t.Fatalf("%s is nil", name)
	}
	return math.Round(*got*100) / 100
}

func TestAnnotateVarianceAndGrowth(t *testing.T) {
	e := NewEngine(AbsolutePrior)

	// Taxation revenue for 2023.
	out := e.Annotate(model.LineItem{
		Category:      "Taxation",
		Budgeted:      decP(t, "2977381493"),
		ActualCurrent: dec(t, "3209934907"),
		ActualPrior:   decP(t, "2587338338"),
	})
	wantDecP(t, "variance", out.Variance, "232553414")
	if got := pct2(t, "variance pct", out.VariancePct); got != 7.81 {
		t.Errorf("variance pct = %.2f, want 7.81", got)
	}
	wantDecP(t, "yoy change", out.YoYChange, "622596569")
	if got := pct2(t, "yoy pct", out.YoYPct); got != 24.06 {
		t.Errorf("yoy pct = %.2f, want 24.06", got)
	}
}

func TestAnnotateExtremeVarianceUnclamped(t *testing.T) {
	e := NewEngine(AbsolutePrior)

	// Bad debt expense blew through a tiny budget; the percentage must
	// come out exactly, not clamped to some display ceiling.
	out := e.Annotate(model.LineItem{
		Category:      "Bad Debt Expense",
		Budgeted:      decP(t, "989555"),
		ActualCurrent: dec(t, "68281611"),
		ActualPrior:   decP(t, "9880606"),
	})
	wantDecP(t, "variance", out.Variance, "67292056")
	if got := pct2(t, "variance pct", out.VariancePct); got != 6800.23 {
		t.Errorf("variance pct = %.2f, want 6800.23", got)
	}
}

func TestAnnotateZeroPriorHasNoGrowthPct(t *testing.T) {
	e := NewEngine(AbsolutePrior)

	out := e.Annotate(model.LineItem{
		Category:      "Grants",
		Budgeted:      decP(t, "25700000"),
		ActualCurrent: dec(t, "20000000"),
		ActualPrior:   decP(t, "0"),
	})
	wantDecP(t, "yoy change", out.YoYChange, "20000000")
	if out.YoYPct != nil {
		t.Errorf("yoy pct = %v, want nil for zero prior", *out.YoYPct)
	}
}

func TestAnnotateMissingColumns(t *testing.T) {
	e := NewEngine(AbsolutePrior)

	out := e.Annotate(model.LineItem{
		Category:      "Government Securities",
		ActualCurrent: dec(t, "8572467834"),
	})
	if out.Variance != nil || out.VariancePct != nil {
		t.Error("variance computed for item without budget")
	}
	if out.YoYChange != nil || out.YoYPct != nil {
		t.Error("growth computed for item without prior")
	}
}

func TestGrowthPolicyNegativePrior(t *testing.T) {
	// Levies swung from -39.5M to +83.4M. Under the absolute policy the
	// recovery reads as positive growth; under the signed policy the sign
	// of the prior flips it.
	item := model.LineItem{
		Category:      "Levies, Fees and Fines",
		Budgeted:      decP(t, "69614799"),
		ActualCurrent: dec(t, "83376897"),
		ActualPrior:   decP(t, "-39531402"),
	}

	abs := NewEngine(AbsolutePrior).Annotate(item)
	wantDecP(t, "yoy change", abs.YoYChange, "122908299")
	if got := pct2(t, "abs yoy pct", abs.YoYPct); got != 310.91 {
		t.Errorf("absolute yoy pct = %.2f, want 310.91", got)
	}

	signed := NewEngine(SignedPrior).Annotate(item)
	if got := pct2(t, "signed yoy pct", signed.YoYPct); got != -310.91 {
		t.Errorf("signed yoy pct = %.2f, want -310.91", got)
	}
}

func TestParseGrowthPolicy(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want GrowthPolicy
	}{
		{"absolute", AbsolutePrior},
		{"signed", SignedPrior},
		{"", AbsolutePrior},
	} {
		got, err := ParseGrowthPolicy(tc.in)
		if err != nil {
			t.Fatalf("ParseGrowthPolicy(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseGrowthPolicy(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if _, err := ParseGrowthPolicy("bogus"); err == nil {
		t.Error("ParseGrowthPolicy accepted bogus policy")
	}
}

func TestAggregateExactTotal(t *testing.T) {
	e := NewEngine(AbsolutePrior)

	// Ten large line items whose exact total is known; a float64
	// accumulator would be at the mercy of rounding here.
	items := make([]model.LineItem, 10)
	for i := range items {
		items[i] = model.LineItem{
			Category:      string(rune('A' + i)),
			ActualCurrent: dec(t, "689002971"),
		}
	}
	items[9].ActualCurrent = dec(t, "689002980")

	agg := e.Aggregate(items, nil)
	if agg.Count != 10 {
		t.Fatalf("count = %d, want 10", agg.Count)
	}
	wantDec(t, "total", agg.TotalCurrent, "6890029719")
	if agg.TotalBudgeted != nil {
		t.Error("budget total present for items without budgets")
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	e := NewEngine(AbsolutePrior)

	items := []model.LineItem{
		{Category: "a", ActualCurrent: dec(t, "3209934907"), ActualPrior: decP(t, "2587338338")},
		{Category: "b", ActualCurrent: dec(t, "1628078161"), ActualPrior: decP(t, "1257284226")},
		{Category: "c", ActualCurrent: dec(t, "1905632"), ActualPrior: decP(t, "-90224420")},
		{Category: "d", ActualCurrent: dec(t, "83376897"), ActualPrior: decP(t, "-39531402")},
		{Category: "e", ActualCurrent: dec(t, "20000000"), ActualPrior: decP(t, "0")},
	}
	want := e.Aggregate(items, nil)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]model.LineItem, len(items))
		copy(shuffled, items)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got := e.Aggregate(shuffled, nil)
		if !got.TotalCurrent.Equal(want.TotalCurrent) || !got.TotalPrior.Equal(*want.TotalPrior) {
			t.Fatalf("shuffle %d changed totals: %s/%s vs %s/%s",
				i, got.TotalCurrent, got.TotalPrior, want.TotalCurrent, want.TotalPrior)
		}
		if *got.ChangePct != *want.ChangePct {
			t.Fatalf("shuffle %d changed pct: %v vs %v", i, *got.ChangePct, *want.ChangePct)
		}
	}
}

func TestAggregatePartialColumns(t *testing.T) {
	e := NewEngine(AbsolutePrior)

	items := []model.LineItem{
		{Category: "a", Budgeted: decP(t, "100"), ActualCurrent: dec(t, "110"), ActualPrior: decP(t, "90")},
		{Category: "b", ActualCurrent: dec(t, "50")},
	}
	agg := e.Aggregate(items, nil)
	if agg.TotalBudgeted != nil {
		t.Error("budget total present despite a budgetless item")
	}
	if agg.TotalPrior != nil || agg.Change != nil || agg.ChangePct != nil {
		t.Error("prior-year rollup present despite a priorless item")
	}
	wantDec(t, "total", agg.TotalCurrent, "160")
}

func TestAggregateKeepFilter(t *testing.T) {
	e := NewEngine(AbsolutePrior)

	items := []model.LineItem{
		{Category: "keep", ActualCurrent: dec(t, "100")},
		{Category: "drop", ActualCurrent: dec(t, "999")},
		{Category: "keep too", ActualCurrent: dec(t, "25")},
	}
	agg := e.Aggregate(items, func(it model.LineItem) bool {
		return it.Category != "drop"
	})
	if agg.Count != 2 {
		t.Fatalf("count = %d, want 2", agg.Count)
	}
	wantDec(t, "total", agg.TotalCurrent, "125")
}

func TestAggregateEmpty(t *testing.T) {
	agg := NewEngine(AbsolutePrior).Aggregate(nil, nil)
	if agg.Count != 0 || !agg.TotalCurrent.IsZero() {
		t.Errorf("empty aggregate = %+v", agg)
	}
	if agg.TotalBudgeted != nil || agg.TotalPrior != nil {
		t.Error("empty aggregate carries column totals")
	}
}

func TestBudgetTotal(t *testing.T) {
	e := NewEngine(AbsolutePrior)

	items := []model.LineItem{
		{Category: "a", Budgeted: decP(t, "100"), ActualCurrent: dec(t, "1")},
		{Category: "b", Budgeted: decP(t, "250"), ActualCurrent: dec(t, "2")},
	}
	total, err := e.BudgetTotal(items)
	if err != nil {
		t.Fatalf("BudgetTotal: %v", err)
	}
	wantDec(t, "budget total", total, "350")

	items[1].Budgeted = nil
	if _, err := e.BudgetTotal(items); err == nil {
		t.Error("BudgetTotal accepted a budgetless item")
	}
}

func TestTopNStableOrder(t *testing.T) {
	e := NewEngine(AbsolutePrior)
	items := e.AnnotateAll([]model.LineItem{
		{Category: "first tie", ActualCurrent: dec(t, "500")},
		{Category: "small", ActualCurrent: dec(t, "10")},
		{Category: "second tie", ActualCurrent: dec(t, "500")},
		{Category: "big", ActualCurrent: dec(t, "900")},
	})

	top := TopN(items, 3)
	got := []string{top[0].Category, top[1].Category, top[2].Category}
	want := []string{"big", "first tie", "second tie"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("TopN order = %v, want %v", got, want)
		}
	}

	if all := TopN(items, 10); len(all) != 4 {
		t.Errorf("TopN(10) over 4 items returned %d", len(all))
	}

	// Ranking must not disturb the input slice.
	if items[0].Category != "first tie" {
		t.Error("TopN mutated its input")
	}
}
