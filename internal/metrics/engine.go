// Package metrics derives every computed figure in the report from the
// source tables: per-item variance and growth, exact aggregates, rankings
// and the headline ratios. Money stays in decimal form end to end;
// percentages are converted to float64 only at the edge.
package metrics

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sjbeckles/fiscboard/internal/model"
)

// GrowthPolicy selects the denominator used for year-over-year growth when
// the prior-year figure is negative.
type GrowthPolicy string

const (
	// AbsolutePrior divides by |prior|, so a swing from negative to
	// positive reads as positive growth. This matches the source report.
	AbsolutePrior GrowthPolicy = "absolute"

	// SignedPrior divides by the prior figure as-is.
	SignedPrior GrowthPolicy = "signed"
)

// ParseGrowthPolicy maps a config or flag value to a GrowthPolicy.
func ParseGrowthPolicy(s string) (GrowthPolicy, error) {
	switch GrowthPolicy(s) {
	case AbsolutePrior, SignedPrior:
		return GrowthPolicy(s), nil
	case "":
		return AbsolutePrior, nil
	}
	return "", fmt.Errorf("unknown growth policy %q (want absolute or signed)", s)
}

var oneHundred = decimal.NewFromInt(100)

// Engine computes derived metrics under one growth policy.
type Engine struct {
	Policy GrowthPolicy
}

// NewEngine returns an engine with the given policy, defaulting to
// AbsolutePrior when unset.
func NewEngine(policy GrowthPolicy) Engine {
	if policy == "" {
		policy = AbsolutePrior
	}
	return Engine{Policy: policy}
}

// pct returns numerator/denominator as a percentage, or nil when the
// denominator is zero. Percentages are never clamped.
func pct(num, den decimal.Decimal) *float64 {
	if den.IsZero() {
		return nil
	}
	v := num.Div(den).Mul(oneHundred).InexactFloat64()
	return &v
}

// growthDen returns the growth denominator for a prior-year figure under
// the engine's policy.
func (e Engine) growthDen(prior decimal.Decimal) decimal.Decimal {
	if e.Policy == AbsolutePrior {
		return prior.Abs()
	}
	return prior
}

// Annotate computes the derived metrics for one line item. Columns absent
// from the item produce nil metrics, and a zero denominator produces a nil
// percentage alongside the exact difference.
func (e Engine) Annotate(it model.LineItem) model.AnnotatedItem {
	out := model.AnnotatedItem{LineItem: it}

	if it.HasBudget() {
		v := it.ActualCurrent.Sub(*it.Budgeted)
		out.Variance = &v
		out.VariancePct = pct(v, *it.Budgeted)
	}
	if it.HasPrior() {
		c := it.ActualCurrent.Sub(*it.ActualPrior)
		out.YoYChange = &c
		out.YoYPct = pct(c, e.growthDen(*it.ActualPrior))
	}
	return out
}

// AnnotateAll annotates every item, preserving table order.
func (e Engine) AnnotateAll(items []model.LineItem) []model.AnnotatedItem {
	out := make([]model.AnnotatedItem, len(items))
	for i, it := range items {
		out[i] = e.Annotate(it)
	}
	return out
}

// Aggregate sums the items selected by keep (nil keeps everything).
// Sums are exact and order-independent. TotalBudgeted and TotalPrior are
// nil unless every selected item carries the corresponding column.
func (e Engine) Aggregate(items []model.LineItem, keep func(model.LineItem) bool) model.AggregateMetrics {
	var agg model.AggregateMetrics
	budgeted := decimal.Zero
	prior := decimal.Zero
	allBudgeted, allPrior := true, true

	for _, it := range items {
		if keep != nil && !keep(it) {
			continue
		}
		agg.Count++
		agg.TotalCurrent = agg.TotalCurrent.Add(it.ActualCurrent)
		if it.HasBudget() {
			budgeted = budgeted.Add(*it.Budgeted)
		} else {
			allBudgeted = false
		}
		if it.HasPrior() {
			prior = prior.Add(*it.ActualPrior)
		} else {
			allPrior = false
		}
	}
	if agg.Count == 0 {
		return agg
	}
	if allBudgeted {
		agg.TotalBudgeted = &budgeted
	}
	if allPrior {
		agg.TotalPrior = &prior
		change := agg.TotalCurrent.Sub(prior)
		agg.Change = &change
		agg.ChangePct = pct(change, e.growthDen(prior))
	}
	return agg
}

// BudgetTotal sums the budgeted column of a flow table. Any row without a
// budgeted amount is a malformed table and yields an error.
func (e Engine) BudgetTotal(items []model.LineItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, it := range items {
		if !it.HasBudget() {
			return decimal.Zero, fmt.Errorf("line item %q has no budgeted amount", it.Category)
		}
		total = total.Add(*it.Budgeted)
	}
	return total, nil
}

// TopN returns the n largest items by current-year actual. The sort is
// stable, so ties keep their source-table order. n larger than the table
// returns the whole table ranked.
func TopN(items []model.AnnotatedItem, n int) []model.AnnotatedItem {
	ranked := make([]model.AnnotatedItem, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ActualCurrent.GreaterThan(ranked[j].ActualCurrent)
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
