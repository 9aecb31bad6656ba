package metrics

import (
	"testing"

	"github.com/sjbeckles/fiscboard/internal/dataset"
	"github.com/sjbeckles/fiscboard/internal/model"
)

func buildTestReport(t *testing.T) *Report {
	t.Helper()
	r, err := BuildReport(dataset.New(), NewEngine(AbsolutePrior))
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	return r
}

func TestReportFiscalTotals(t *testing.T) {
	r := buildTestReport(t)

	wantDec(t, "revenue total", r.RevenueTotal.TotalCurrent, "6696035126")
	wantDecP(t, "revenue prior", r.RevenueTotal.TotalPrior, "5197992118")
	wantDecP(t, "revenue budget", r.RevenueTotal.TotalBudgeted, "6216598930")
	wantDec(t, "expenditure total", r.ExpenditureTotal.TotalCurrent, "3586134842")
	wantDecP(t, "expenditure prior", r.ExpenditureTotal.TotalPrior, "3374294566")

	wantDec(t, "fiscal balance", r.FiscalBalance, "3109900284")
	wantDec(t, "fiscal balance prior", r.FiscalBalancePrior, "1823697552")
	if r.FiscalBalance.Sign() <= 0 {
		t.Error("2023 fiscal balance should be a surplus")
	}

	wantDecP(t, "revenue growth", r.RevenueTotal.Change, "1498043008")
	if got := pct2(t, "revenue growth pct", r.RevenueTotal.ChangePct); got != 28.82 {
		t.Errorf("revenue growth pct = %.2f, want 28.82", got)
	}
}

func TestReportBalanceSheet(t *testing.T) {
	r := buildTestReport(t)

	wantDec(t, "total assets", r.TotalAssets, "8072674058")
	wantDec(t, "total assets prior", r.TotalAssetsPrior, "7553807331")
	wantDec(t, "total liabilities", r.TotalLiabilities, "14930759310")
	wantDec(t, "total liabilities prior", r.TotalLiabilitiesPrior, "14183357313")
	wantDec(t, "net position", r.NetPosition, "-6858085252")
	wantDec(t, "net debt", r.NetDebt, "7460852683")
	wantDec(t, "net debt prior", r.NetDebtPrior, "7230941066")
}

func TestReportHeadlineRatios(t *testing.T) {
	r := buildTestReport(t)

	if got := pct2(t, "liabilities/assets", r.LiabilitiesToAssetsPct); got != 184.95 {
		t.Errorf("liabilities/assets = %.2f, want 184.95", got)
	}
	if got := pct2(t, "debt service/revenue", r.DebtServiceToRevenuePct); got != 8.49 {
		t.Errorf("debt service/revenue = %.2f, want 8.49", got)
	}
	if got := pct2(t, "tax receivables/assets", r.TaxReceivablesToAssetsPct); got != 30.09 {
		t.Errorf("tax receivables/assets = %.2f, want 30.09", got)
	}
}

func TestReportDebtSplit(t *testing.T) {
	r := buildTestReport(t)

	wantDec(t, "debt total", r.DebtTotal.TotalCurrent, "13596000000")
	wantDecP(t, "debt total prior", r.DebtTotal.TotalPrior, "13274450000")
	wantDecP(t, "debt change", r.DebtTotal.Change, "321550000")
	wantDec(t, "domestic debt", r.DomesticDebt.TotalCurrent, "8439750000")
	wantDec(t, "foreign debt", r.ForeignDebt.TotalCurrent, "5156250000")

	// The split partitions the table.
	sum := r.DomesticDebt.TotalCurrent.Add(r.ForeignDebt.TotalCurrent)
	if !sum.Equal(r.DebtTotal.TotalCurrent) {
		t.Errorf("domestic + foreign = %s, want %s", sum, r.DebtTotal.TotalCurrent)
	}
	if r.DomesticDebt.Count+r.ForeignDebt.Count != r.DebtTotal.Count {
		t.Error("domestic/foreign split dropped or duplicated rows")
	}
}

func TestReportSOETotals(t *testing.T) {
	r := buildTestReport(t)

	wantDec(t, "soe current", r.SOECurrentTotal, "345092398.44")
	wantDec(t, "soe capital", r.SOECapitalTotal, "181770870.00")
	wantDec(t, "soe total", r.SOETotal, "526863268.44")
}

func TestReportTopRevenue(t *testing.T) {
	r := buildTestReport(t)

	top := r.TopRevenue(3)
	want := []string{"Taxation", "Goods and Services", "Income and Profits"}
	for i, w := range want {
		if top[i].Category != w {
			t.Fatalf("top revenue[%d] = %q, want %q", i, top[i].Category, w)
		}
	}
}

func TestReportFindings(t *testing.T) {
	r := buildTestReport(t)

	critical := r.FindingsBySeverity(model.SeverityCritical)
	if len(critical) != 3 {
		t.Fatalf("critical findings = %d, want 3", len(critical))
	}

	total, excluded := r.QuantifiedFindingsTotal()
	wantDec(t, "quantified findings total", total, "3479280000")
	if excluded != 2 {
		t.Errorf("excluded findings = %d, want 2", excluded)
	}
}

func TestBuildReportRejectsBudgetlessFlowRow(t *testing.T) {
	ds := dataset.New()
	ds.Revenue[0].Budgeted = nil

	if _, err := BuildReport(ds, NewEngine(AbsolutePrior)); err == nil {
		t.Fatal("BuildReport accepted a revenue row without a budget")
	}
}
