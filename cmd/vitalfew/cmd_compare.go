package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vitalfew/internal/dataset"
	"vitalfew/internal/format"
	"vitalfew/internal/insight"
	"vitalfew/internal/pareto"
)

var compareFlags struct {
	field   string
	idField string
	name    string
}

var compareCmd = &cobra.Command{
	Use:   "compare <baseline> <scenario>",
	Short: "Compare total impact between two datasets",
	Long: `Compare a baseline dataset against a projected scenario and report the
reduction in total impact.

Usage:
  vitalfew compare current.yaml projected.yaml --field delay_days --name "vendor swap"`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	f := compareCmd.Flags()
	f.StringVar(&compareFlags.field, "field", "", "Impact field to rank by (required)")
	f.StringVar(&compareFlags.idField, "id", "id", "Identifier field for output labels")
	f.StringVar(&compareFlags.name, "name", "", "Scenario name for the recommendation")
	_ = compareCmd.MarkFlagRequired("field")
}

func runCompare(cmd *cobra.Command, args []string) error {
	baselineRecords, err := dataset.LoadFromPath(args[0])
	if err != nil {
		return fmt.Errorf("baseline: %w", err)
	}
	scenarioRecords, err := dataset.LoadFromPath(args[1])
	if err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	opts := []pareto.Option{pareto.WithIDField(compareFlags.idField)}
	baseline, err := pareto.Decompose(baselineRecords, compareFlags.field, opts...)
	if err != nil {
		return fmt.Errorf("baseline: %w", err)
	}
	scenario, err := pareto.Decompose(scenarioRecords, compareFlags.field, opts...)
	if err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	comparison, err := insight.CompareScenarios(baseline, scenario, compareFlags.name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== Scenario Comparison ===")
	fmt.Fprintf(out, "Baseline total: %s\n", format.FmtImpact(comparison.BaselineTotal))
	fmt.Fprintf(out, "Scenario total: %s\n", format.FmtImpact(comparison.ScenarioTotal))
	fmt.Fprintf(out, "Reduction:      %s (%.1f%%)\n", format.FmtImpact(comparison.AbsoluteReduction), comparison.PercentReduction)
	fmt.Fprintf(out, "\n%s\n", comparison.Recommendation)
	return nil
}
