package insight

import (
	"errors"
	"fmt"

	"vitalfew/internal/pareto"
)

// Comparison reports the change in total impact between two independently
// computed decompositions, e.g. current state vs. projected after an
// intervention.
type Comparison struct {
	ScenarioName      string  `json:"scenario_name"`
	BaselineTotal     float64 `json:"baseline_total"`
	ScenarioTotal     float64 `json:"scenario_total"`
	AbsoluteReduction float64 `json:"absolute_reduction"`
	PercentReduction  float64 `json:"percent_reduction"`
	Recommendation    string  `json:"recommendation"`
}

// CompareScenarios computes the absolute and percentage reduction in total
// impact from baseline to scenario. A scenario that does not lower the total
// gets an explicit "no improvement" recommendation — a negative reduction is
// never framed as progress.
func CompareScenarios(baseline, scenario *pareto.Result, scenarioName string) (*Comparison, error) {
	if baseline == nil || scenario == nil {
		return nil, errors.New("compare scenarios: nil result")
	}
	if scenarioName == "" {
		scenarioName = "scenario"
	}

	// Decompose guarantees a non-zero baseline total.
	absolute := round2(baseline.TotalImpact - scenario.TotalImpact)
	percent := round2(absolute / baseline.TotalImpact * 100)

	var rec string
	if absolute > 0 {
		rec = fmt.Sprintf("Adopting %q removes %.2f of total impact, a %.1f%% reduction.",
			scenarioName, absolute, percent)
	} else {
		rec = fmt.Sprintf("No improvement: %q does not reduce total impact (baseline %.2f, scenario %.2f).",
			scenarioName, baseline.TotalImpact, scenario.TotalImpact)
	}

	return &Comparison{
		ScenarioName:      scenarioName,
		BaselineTotal:     baseline.TotalImpact,
		ScenarioTotal:     scenario.TotalImpact,
		AbsoluteReduction: absolute,
		PercentReduction:  percent,
		Recommendation:    rec,
	}, nil
}
