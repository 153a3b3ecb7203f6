// Package insight turns a pareto.Result into narrative output: a summary
// sentence, key findings, prioritized recommendations, a rough financial
// estimate, and scenario-to-scenario comparisons.
//
// Like the engine it consumes, everything here is a pure function of its
// inputs. The financial figures are heuristic planning estimates, not
// guaranteed values.
package insight

import (
	"errors"
	"fmt"
	"math"

	"vitalfew/internal/pareto"
)

// Recommendation thresholds. These are fixed wording triggers, deliberately
// independent of the configurable validation band: "high leverage" fires
// above the classic 80% mark even when the band has been widened.
const (
	highLeverageShare = 0.80
	flatShare         = 0.75

	maxPriorityActions = 5
)

// Context carries the free-text labels used for message formatting plus the
// multiplier table for the financial estimate. All fields are optional;
// zero values get sensible defaults.
type Context struct {
	// Business names what the impact adds up to, e.g. "release delays".
	Business string
	// MetricName is the unit name of the impact metric, e.g. "delay_days".
	// It keys the multiplier lookup.
	MetricName string
	// ItemType is the plural name of the items, e.g. "issues".
	ItemType string
	// Multipliers overrides the embedded unit-value table when non-zero.
	Multipliers Table
}

// FinancialImpact is a heuristic dollar estimate of the top subset's share
// of total impact.
type FinancialImpact struct {
	EstimatedValue float64 `json:"estimated_value"`
	Multiplier     float64 `json:"multiplier"`
	Basis          string  `json:"basis"`
	// Confidence is "moderate" when the distribution validated and the
	// metric name resolved in the table, "low" otherwise.
	Confidence string `json:"confidence"`
}

// PriorityAction is one top-subset item with its 1-based priority rank.
type PriorityAction struct {
	Priority      int     `json:"priority"`
	ID            string  `json:"id"`
	CumulativePct float64 `json:"cumulative_pct"`
	Action        string  `json:"action"`
}

// Insights is the structured narrative bundle for one decomposition.
type Insights struct {
	Summary          string           `json:"summary"`
	KeyFindings      []string         `json:"key_findings"`
	Recommendations  []string         `json:"recommendations"`
	FinancialImpact  FinancialImpact  `json:"financial_impact"`
	PriorityActions  []PriorityAction `json:"priority_actions"`
	ParetoValidation string           `json:"pareto_validation"`
}

// Generate builds the narrative bundle for res. It never fails on the
// content of a valid result — a single-item decomposition (top subset = the
// one item at 100%) is fine.
func Generate(res *pareto.Result, ctx Context) (*Insights, error) {
	if res == nil {
		return nil, errors.New("generate insights: nil result")
	}

	if ctx.Business == "" {
		ctx.Business = "total impact"
	}
	if ctx.MetricName == "" {
		ctx.MetricName = res.ImpactField
	}
	if ctx.ItemType == "" {
		ctx.ItemType = "items"
	}
	if ctx.Multipliers.Default == 0 && ctx.Multipliers.Metrics == nil {
		ctx.Multipliers = DefaultTable()
	}

	n := res.TopSubsetSize()
	total := len(res.SortedItems)
	sharePct := res.TopSubsetContribution * 100
	countPct := float64(n) / float64(total) * 100

	out := &Insights{
		Summary: fmt.Sprintf("%d out of %d %s (%.1f%%) drive %.1f%% of %s.",
			n, total, ctx.ItemType, countPct, sharePct, ctx.Business),
		KeyFindings:      keyFindings(res, ctx),
		Recommendations:  recommendations(res, ctx, n, sharePct),
		FinancialImpact:  estimateFinancialImpact(res, ctx),
		PriorityActions:  priorityActions(res),
		ParetoValidation: validationMessage(res, ctx),
	}
	return out, nil
}

func keyFindings(res *pareto.Result, ctx Context) []string {
	top := res.SortedItems[0]
	topShare := top.Impact(res.ImpactField) / res.TotalImpact * 100

	var concentration string
	switch {
	case res.IsValidPareto:
		concentration = "The classical 80/20 pattern holds for this distribution."
	case res.TopSubsetContribution > res.Band.High:
		concentration = fmt.Sprintf(
			"Impact is more concentrated than the typical 80/20 pattern (top subset carries %.1f%%).",
			res.TopSubsetContribution*100)
	default:
		concentration = fmt.Sprintf(
			"Impact is less concentrated than the typical 80/20 pattern (top subset carries only %.1f%%).",
			res.TopSubsetContribution*100)
	}

	return []string{
		fmt.Sprintf("Highest-impact item %q alone accounts for %.1f%% of %s.",
			top.Label(res.IDField), topShare, ctx.Business),
		concentration,
		fmt.Sprintf("Grand total: %.2f %s across %d %s.",
			res.TotalImpact, ctx.MetricName, len(res.SortedItems), ctx.ItemType),
	}
}

func recommendations(res *pareto.Result, ctx Context, n int, sharePct float64) []string {
	recs := []string{
		fmt.Sprintf("Immediate: focus on the top %d %s — they carry %.1f%% of %s.",
			n, ctx.ItemType, sharePct, ctx.Business),
	}
	if res.TopSubsetContribution > highLeverageShare {
		recs = append(recs, fmt.Sprintf(
			"High leverage: resolving just the top %d %s would eliminate most of %s.",
			n, ctx.ItemType, ctx.Business))
	}
	if res.TopSubsetContribution < flatShare {
		recs = append(recs,
			"Broad strategy needed: impact is spread across the long tail, so fixing only the top items will not move the total far.")
	}
	return recs
}

func estimateFinancialImpact(res *pareto.Result, ctx Context) FinancialImpact {
	multiplier, recognized := ctx.Multipliers.Lookup(ctx.MetricName)
	value := round2(res.TotalImpact * res.TopSubsetContribution * multiplier)

	confidence := "low"
	if res.IsValidPareto && recognized {
		confidence = "moderate"
	}

	basis := fmt.Sprintf("total %s x top-subset share x %.2f per unit; heuristic estimate, not a guaranteed figure",
		ctx.MetricName, multiplier)
	if !recognized {
		basis += " (unrecognized metric, default multiplier)"
	}

	return FinancialImpact{
		EstimatedValue: value,
		Multiplier:     multiplier,
		Basis:          basis,
		Confidence:     confidence,
	}
}

func priorityActions(res *pareto.Result) []PriorityAction {
	limit := res.TopSubsetSize()
	if limit > maxPriorityActions {
		limit = maxPriorityActions
	}
	actions := make([]PriorityAction, 0, limit)
	for i := 0; i < limit; i++ {
		idx := res.TopSubsetIndices[i]
		id := res.SortedItems[idx].Label(res.IDField)
		pct := round2(res.CumulativeContributions[idx] * 100)
		actions = append(actions, PriorityAction{
			Priority:      i + 1,
			ID:            id,
			CumulativePct: pct,
			Action:        fmt.Sprintf("Address %q (cumulative %.1f%% of impact)", id, pct),
		})
	}
	return actions
}

func validationMessage(res *pareto.Result, ctx Context) string {
	pct := res.TopSubsetContribution * 100
	switch {
	case res.IsValidPareto:
		return fmt.Sprintf("Pareto validated: the top 20%% of %s drive %.1f%% of impact, within the %.0f-%.0f%% band.",
			ctx.ItemType, pct, res.Band.Low*100, res.Band.High*100)
	case res.TopSubsetContribution > res.Band.High:
		return fmt.Sprintf("Over-concentrated: the top 20%% of %s drive %.1f%% of impact, above the %.0f%% upper bound — a handful of %s dominate.",
			ctx.ItemType, pct, res.Band.High*100, ctx.ItemType)
	default:
		return fmt.Sprintf("Under-concentrated: the top 20%% of %s drive only %.1f%% of impact, below the %.0f%% lower bound — the 80/20 pattern did not hold.",
			ctx.ItemType, pct, res.Band.Low*100)
	}
}

// round2 rounds currency-like figures to cents.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
