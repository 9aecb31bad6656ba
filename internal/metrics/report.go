package metrics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sjbeckles/fiscboard/internal/dataset"
	"github.com/sjbeckles/fiscboard/internal/model"
)

// Report is the fully derived view of one dataset: every table annotated
// and every headline figure computed. Build it once and hand it to the
// presentation layer; nothing downstream recomputes.
type Report struct {
	Data   *dataset.Dataset
	Engine Engine

	Revenue       []model.AnnotatedItem
	Expenditure   []model.AnnotatedItem
	TaxDetail     []model.AnnotatedItem
	DebtStructure []model.AnnotatedItem
	DebtService   []model.AnnotatedItem

	// Balance sheet sections in statement order: current assets,
	// non-current assets, current liabilities, long-term liabilities.
	BalanceSections []AnnotatedSection

	RevenueTotal     model.AggregateMetrics
	ExpenditureTotal model.AggregateMetrics
	DebtTotal        model.AggregateMetrics
	DomesticDebt     model.AggregateMetrics
	ForeignDebt      model.AggregateMetrics

	// Fiscal balance is revenue minus expenditure; positive is a surplus.
	FiscalBalance      decimal.Decimal
	FiscalBalancePrior decimal.Decimal

	TotalAssets           decimal.Decimal
	TotalAssetsPrior      decimal.Decimal
	TotalLiabilities      decimal.Decimal
	TotalLiabilitiesPrior decimal.Decimal

	// Net position is assets minus liabilities as stated, before any of
	// the audit findings are applied.
	NetPosition      decimal.Decimal
	NetPositionPrior decimal.Decimal

	// Net debt is total liabilities less liquid assets (current assets
	// plus current financial assets).
	NetDebt      decimal.Decimal
	NetDebtPrior decimal.Decimal

	LiabilitiesToAssetsPct    *float64
	DebtServiceToRevenuePct   *float64
	TaxReceivablesToAssetsPct *float64

	SOECurrentTotal decimal.Decimal
	SOECapitalTotal decimal.Decimal
	SOETotal        decimal.Decimal
}

// AnnotatedSection is a balance sheet section with derived metrics on the
// printed total and every component row.
type AnnotatedSection struct {
	Name  string
	Total model.AnnotatedItem
	Items []model.AnnotatedItem
}

// BuildReport derives every report figure from the dataset. The only error
// paths are structural: a headline row missing from its table, or a flow
// table row without a budget column.
func BuildReport(ds *dataset.Dataset, e Engine) (*Report, error) {
	r := &Report{Data: ds, Engine: e}

	r.Revenue = e.AnnotateAll(ds.Revenue)
	r.Expenditure = e.AnnotateAll(ds.Expenditure)
	r.TaxDetail = e.AnnotateAll(ds.TaxDetail)
	r.DebtStructure = e.AnnotateAll(ds.DebtStructure)
	r.DebtService = e.AnnotateAll(ds.DebtService)

	for _, sec := range []model.BalanceSection{
		ds.CurrentAssets, ds.NonCurrentAssets,
		ds.CurrentLiabilities, ds.LongTermLiabilities,
	} {
		r.BalanceSections = append(r.BalanceSections, AnnotatedSection{
			Name:  sec.Name,
			Total: e.Annotate(sec.Total),
			Items: e.AnnotateAll(sec.Items),
		})
	}

	if _, err := e.BudgetTotal(ds.Revenue); err != nil {
		return nil, fmt.Errorf("revenue table: %w", err)
	}
	if _, err := e.BudgetTotal(ds.Expenditure); err != nil {
		return nil, fmt.Errorf("expenditure table: %w", err)
	}
	r.RevenueTotal = e.Aggregate(ds.Revenue, nil)
	r.ExpenditureTotal = e.Aggregate(ds.Expenditure, nil)
	if r.RevenueTotal.TotalPrior == nil || r.ExpenditureTotal.TotalPrior == nil {
		return nil, fmt.Errorf("flow tables missing prior-year column")
	}

	r.FiscalBalance = r.RevenueTotal.TotalCurrent.Sub(r.ExpenditureTotal.TotalCurrent)
	r.FiscalBalancePrior = r.RevenueTotal.TotalPrior.Sub(*r.ExpenditureTotal.TotalPrior)

	r.TotalAssets = ds.CurrentAssets.Total.ActualCurrent.Add(ds.NonCurrentAssets.Total.ActualCurrent)
	r.TotalAssetsPrior = priorOf(ds.CurrentAssets.Total).Add(priorOf(ds.NonCurrentAssets.Total))
	r.TotalLiabilities = ds.CurrentLiabilities.Total.ActualCurrent.Add(ds.LongTermLiabilities.Total.ActualCurrent)
	r.TotalLiabilitiesPrior = priorOf(ds.CurrentLiabilities.Total).Add(priorOf(ds.LongTermLiabilities.Total))

	r.NetPosition = r.TotalAssets.Sub(r.TotalLiabilities)
	r.NetPositionPrior = r.TotalAssetsPrior.Sub(r.TotalLiabilitiesPrior)

	finAssets, ok := ds.CurrentAssets.Item(dataset.CategoryFinancialAssets)
	if !ok {
		return nil, fmt.Errorf("current assets: no %q row", dataset.CategoryFinancialAssets)
	}
	liquid := ds.CurrentAssets.Total.ActualCurrent.Add(finAssets.ActualCurrent)
	liquidPrior := priorOf(ds.CurrentAssets.Total).Add(priorOf(finAssets))
	r.NetDebt = r.TotalLiabilities.Sub(liquid)
	r.NetDebtPrior = r.TotalLiabilitiesPrior.Sub(liquidPrior)

	debtService, ok := findItem(ds.Expenditure, dataset.CategoryDebtService)
	if !ok {
		return nil, fmt.Errorf("expenditure: no %q row", dataset.CategoryDebtService)
	}
	taxRecv, ok := ds.CurrentAssets.Item(dataset.CategoryTaxReceivables)
	if !ok {
		return nil, fmt.Errorf("current assets: no %q row", dataset.CategoryTaxReceivables)
	}
	r.LiabilitiesToAssetsPct = pct(r.TotalLiabilities, r.TotalAssets)
	r.DebtServiceToRevenuePct = pct(debtService.ActualCurrent, r.RevenueTotal.TotalCurrent)
	r.TaxReceivablesToAssetsPct = pct(taxRecv.ActualCurrent, r.TotalAssets)

	domestic := make(map[string]bool, len(dataset.DomesticDebtTypes))
	for _, c := range dataset.DomesticDebtTypes {
		domestic[c] = true
	}
	r.DebtTotal = e.Aggregate(ds.DebtStructure, nil)
	r.DomesticDebt = e.Aggregate(ds.DebtStructure, func(it model.LineItem) bool {
		return domestic[it.Category]
	})
	r.ForeignDebt = e.Aggregate(ds.DebtStructure, func(it model.LineItem) bool {
		return !domestic[it.Category]
	})

	for _, row := range ds.SOETransfers {
		r.SOECurrentTotal = r.SOECurrentTotal.Add(row.CurrentTransfer)
		r.SOECapitalTotal = r.SOECapitalTotal.Add(row.CapitalTransfer)
	}
	r.SOETotal = r.SOECurrentTotal.Add(r.SOECapitalTotal)

	return r, nil
}

// TopRevenue returns the n largest revenue sources.
func (r *Report) TopRevenue(n int) []model.AnnotatedItem { return TopN(r.Revenue, n) }

// TopExpenditure returns the n largest expenditure lines.
func (r *Report) TopExpenditure(n int) []model.AnnotatedItem { return TopN(r.Expenditure, n) }

// FindingsBySeverity returns the findings carrying the given severity,
// in report order.
func (r *Report) FindingsBySeverity(sev model.Severity) []model.Finding {
	var out []model.Finding
	for _, f := range r.Data.Findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

// QuantifiedFindingsTotal sums the quantified finding amounts and reports
// how many findings were excluded as unquantified.
func (r *Report) QuantifiedFindingsTotal() (decimal.Decimal, int) {
	total := decimal.Zero
	excluded := 0
	for _, f := range r.Data.Findings {
		if v, ok := f.Amount.Value(); ok {
			total = total.Add(v)
		} else {
			excluded++
		}
	}
	return total, excluded
}

func findItem(items []model.LineItem, category string) (model.LineItem, bool) {
	for _, it := range items {
		if it.Category == category {
			return it, true
		}
	}
	return model.LineItem{}, false
}

func priorOf(it model.LineItem) decimal.Decimal {
	if it.ActualPrior == nil {
		return decimal.Zero
	}
	return *it.ActualPrior
}
