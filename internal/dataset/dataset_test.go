package dataset

import (
	"testing"

	"github.com/sjbeckles/fiscboard/internal/model"
)

func TestTableRowCounts(t *testing.T) {
	ds := New()

	checks := []struct {
		name string
		got  int
		want int
	}{
		{"revenue", len(ds.Revenue), 10},
		{"expenditure", len(ds.Expenditure), 9},
		{"current assets", len(ds.CurrentAssets.Items), 6},
		{"non-current assets", len(ds.NonCurrentAssets.Items), 6},
		{"current liabilities", len(ds.CurrentLiabilities.Items), 7},
		{"long-term liabilities", len(ds.LongTermLiabilities.Items), 5},
		{"tax detail", len(ds.TaxDetail), 11},
		{"debt structure", len(ds.DebtStructure), 10},
		{"debt service", len(ds.DebtService), 5},
		{"soe transfers", len(ds.SOETransfers), 10},
		{"findings", len(ds.Findings), 7},
		{"compliance", len(ds.Compliance), 4},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %d rows, want %d", c.name, c.got, c.want)
		}
	}
}

func TestCategoryKeysUniquePerTable(t *testing.T) {
	ds := New()

	tables := map[string][]model.LineItem{
		"revenue":               ds.Revenue,
		"expenditure":           ds.Expenditure,
		"current assets":        ds.CurrentAssets.Items,
		"non-current assets":    ds.NonCurrentAssets.Items,
		"current liabilities":   ds.CurrentLiabilities.Items,
		"long-term liabilities": ds.LongTermLiabilities.Items,
		"tax detail":            ds.TaxDetail,
		"debt structure":        ds.DebtStructure,
		"debt service":          ds.DebtService,
	}
	for name, items := range tables {
		seen := make(map[string]bool, len(items))
		for _, it := range items {
			if seen[it.Category] {
				t.Errorf("%s: duplicate category %q", name, it.Category)
			}
			seen[it.Category] = true
		}
	}
}

func TestFlowTablesCarryAllColumns(t *testing.T) {
	ds := New()

	for _, items := range [][]model.LineItem{ds.Revenue, ds.Expenditure} {
		for _, it := range items {
			if !it.HasBudget() {
				t.Errorf("%s: missing budgeted amount", it.Category)
			}
			if !it.HasPrior() {
				t.Errorf("%s: missing prior actual", it.Category)
			}
		}
	}
}

func TestSectionScopedLookup(t *testing.T) {
	ds := New()

	// Financial Assets appears in both asset sections with different values.
	cur, ok := ds.CurrentAssets.Item(CategoryFinancialAssets)
	if !ok {
		t.Fatal("current assets: Financial Assets not found")
	}
	non, ok := ds.NonCurrentAssets.Item(CategoryFinancialAssets)
	if !ok {
		t.Fatal("non-current assets: Financial Assets not found")
	}
	if cur.ActualCurrent.Equal(non.ActualCurrent) {
		t.Error("section lookup returned the same row for both sections")
	}
	if got := cur.ActualCurrent.String(); got != "3734618402" {
		t.Errorf("current-assets Financial Assets = %s, want 3734618402", got)
	}
	if got := non.ActualCurrent.String(); got != "609280459" {
		t.Errorf("non-current Financial Assets = %s, want 609280459", got)
	}

	if _, ok := ds.CurrentAssets.Item("No Such Row"); ok {
		t.Error("lookup of unknown category reported ok")
	}
}

func TestNewReturnsFreshValues(t *testing.T) {
	a := New()
	b := New()

	a.Revenue[0].Category = "mutated"
	if b.Revenue[0].Category == "mutated" {
		t.Fatal("datasets share backing storage")
	}
}

func TestFindingAmountVariants(t *testing.T) {
	ds := New()

	quantified := 0
	for _, f := range ds.Findings {
		if _, ok := f.Amount.Value(); ok {
			quantified++
		} else if f.Amount.Reason() == "" {
			t.Errorf("%s: unquantified amount without reason", f.Issue)
		}
	}
	if quantified != 5 {
		t.Errorf("quantified findings = %d, want 5", quantified)
	}
}
