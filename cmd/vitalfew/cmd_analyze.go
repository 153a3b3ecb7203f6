package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"vitalfew/internal/dataset"
	"vitalfew/internal/display"
	"vitalfew/internal/format"
	"vitalfew/internal/insight"
	"vitalfew/internal/pareto"
)

var analyzeFlags struct {
	field       string
	idField     string
	dimensions  string
	ascending   bool
	band        string
	context     string
	metricName  string
	itemType    string
	multipliers string
	output      string
	insights    bool
	markdown    bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <dataset>",
	Short: "Rank a dataset's records and report the vital few",
	Long: `Analyze a dataset of scored records (YAML or JSON) and produce a ranked
80/20 breakdown with Pareto validation.

Usage:
  vitalfew analyze issues.yaml --field delay_days --id issue_id
  vitalfew analyze churn.json --field subscribers_lost --insights
  vitalfew analyze issues.yaml --dimensions delay_days,error_count

The dataset file is either a bare list of records or a mapping with a
"records" key. Records missing the impact field count as 0.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&analyzeFlags.field, "field", "", "Impact field to rank by")
	f.StringVar(&analyzeFlags.idField, "id", "id", "Identifier field for output labels")
	f.StringVar(&analyzeFlags.dimensions, "dimensions", "", "Comma-separated impact fields (one decomposition each)")
	f.BoolVar(&analyzeFlags.ascending, "ascending", false, "Rank least impactful first")
	f.StringVar(&analyzeFlags.band, "band", "", "Pareto validation band as low,high (default 0.75,0.85)")
	f.StringVar(&analyzeFlags.context, "context", "", "Business context for insight wording (default derived from field)")
	f.StringVar(&analyzeFlags.metricName, "metric-name", "", "Impact metric unit name (default: the field name)")
	f.StringVar(&analyzeFlags.itemType, "item-type", "", "Plural item name for insight wording (default derived from field)")
	f.StringVar(&analyzeFlags.multipliers, "multipliers", "", "YAML file overriding the financial multiplier table")
	f.StringVarP(&analyzeFlags.output, "output", "o", "", "Write the JSON result artifact to this path")
	f.BoolVar(&analyzeFlags.insights, "insights", false, "Print the narrative insight bundle")
	f.BoolVar(&analyzeFlags.markdown, "markdown", false, "Render tables as Markdown instead of ASCII")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeFlags.field == "" && analyzeFlags.dimensions == "" {
		return fmt.Errorf("an impact field is required\n\nUsage: vitalfew analyze <dataset> --field <name>\n       vitalfew analyze <dataset> --dimensions a,b,c")
	}

	records, err := dataset.LoadFromPath(args[0])
	if err != nil {
		return err
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	if analyzeFlags.dimensions != "" {
		return runDimensions(cmd, records, opts)
	}

	res, err := pareto.Decompose(records, analyzeFlags.field, opts...)
	if err != nil {
		return err
	}

	mode := format.ASCII
	if analyzeFlags.markdown {
		mode = format.Markdown
	}
	fmt.Fprint(cmd.OutOrStdout(), renderBreakdown(res, mode))

	artifact := struct {
		Result   *pareto.Result    `json:"result"`
		Insights *insight.Insights `json:"insights,omitempty"`
	}{Result: res}

	if analyzeFlags.insights {
		ins, err := generateInsightBundle(res)
		if err != nil {
			return err
		}
		artifact.Insights = ins
		fmt.Fprint(cmd.OutOrStdout(), renderInsights(ins))
	}

	if analyzeFlags.output != "" {
		data, err := json.MarshalIndent(artifact, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		if err := os.WriteFile(analyzeFlags.output, data, 0600); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nResult written to: %s\n", analyzeFlags.output)
	}

	return nil
}

func runDimensions(cmd *cobra.Command, records []pareto.Record, opts []pareto.Option) error {
	fields := splitFields(analyzeFlags.dimensions)
	if len(fields) == 0 {
		return fmt.Errorf("--dimensions needs at least one field")
	}

	results := pareto.DecomposeDimensions(records, fields, opts...)

	mode := format.ASCII
	if analyzeFlags.markdown {
		mode = format.Markdown
	}

	tbl := format.NewTable(mode)
	tbl.Header("Dimension", "Total", "Top Subset", "Contribution", "80/20")
	tbl.Columns(
		format.ColumnConfig{Number: 2, Align: format.AlignRight},
		format.ColumnConfig{Number: 4, Align: format.AlignRight},
	)
	for _, field := range fields {
		res := results[field]
		if res == nil {
			tbl.Row(display.MetricLabel(field), "-", "-", "-", "invalid")
			continue
		}
		tbl.Row(
			display.MetricLabel(field),
			format.FmtImpact(res.TotalImpact),
			fmt.Sprintf("%d/%d", res.TopSubsetSize(), len(res.SortedItems)),
			format.FmtPercent(res.TopSubsetContribution),
			format.BoolMark(res.IsValidPareto),
		)
	}
	fmt.Fprintln(cmd.OutOrStdout(), tbl.String())

	if analyzeFlags.output != "" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		if err := os.WriteFile(analyzeFlags.output, data, 0600); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Results written to: %s\n", analyzeFlags.output)
	}
	return nil
}

func renderBreakdown(res *pareto.Result, mode format.Mode) string {
	var b strings.Builder

	b.WriteString("=== Pareto Breakdown ===\n")
	b.WriteString(fmt.Sprintf("Field:      %s\n", display.MetricWithKey(res.ImpactField)))
	b.WriteString(fmt.Sprintf("Items:      %d\n", len(res.SortedItems)))
	b.WriteString(fmt.Sprintf("Total:      %s\n", format.FmtImpact(res.TotalImpact)))
	b.WriteString(fmt.Sprintf("Vital few:  %d (top 20%% by count)\n", res.TopSubsetSize()))
	b.WriteString(fmt.Sprintf("They carry: %s of impact\n", format.FmtPercent(res.TopSubsetContribution)))
	b.WriteString(fmt.Sprintf("80/20:      %s (band %.0f-%.0f%%)\n\n",
		format.BoolMark(res.IsValidPareto), res.Band.Low*100, res.Band.High*100))

	tbl := format.NewTable(mode)
	tbl.Header("Rank", "ID", "Impact", "Share", "Cumulative")
	tbl.Columns(
		format.ColumnConfig{Number: 2, MaxWidth: 40},
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
		format.ColumnConfig{Number: 4, Align: format.AlignRight},
		format.ColumnConfig{Number: 5, Align: format.AlignRight},
	)
	for _, c := range pareto.TopContributors(res) {
		tbl.Row(
			c.Rank,
			format.Truncate(c.ID, 40),
			format.FmtImpact(c.Impact),
			format.FmtPercent(c.Contribution),
			format.FmtPercent(c.Cumulative),
		)
	}
	b.WriteString(tbl.String())
	b.WriteString("\n")

	return b.String()
}

func generateInsightBundle(res *pareto.Result) (*insight.Insights, error) {
	multipliers := insight.DefaultTable()
	if analyzeFlags.multipliers != "" {
		t, err := insight.LoadTable(analyzeFlags.multipliers)
		if err != nil {
			return nil, err
		}
		multipliers = t
	}

	metricName := analyzeFlags.metricName
	if metricName == "" {
		metricName = res.ImpactField
	}
	business := analyzeFlags.context
	if business == "" {
		business = display.BusinessContext(res.ImpactField)
	}
	itemType := analyzeFlags.itemType
	if itemType == "" {
		itemType = display.ItemType(res.ImpactField)
	}

	return insight.Generate(res, insight.Context{
		Business:    business,
		MetricName:  metricName,
		ItemType:    itemType,
		Multipliers: multipliers,
	})
}

func renderInsights(ins *insight.Insights) string {
	var b strings.Builder

	b.WriteString("\n--- Insights ---\n")
	b.WriteString(ins.Summary + "\n\n")

	b.WriteString("Key findings:\n")
	for _, f := range ins.KeyFindings {
		b.WriteString("  - " + f + "\n")
	}

	b.WriteString("\nRecommendations:\n")
	for _, r := range ins.Recommendations {
		b.WriteString("  - " + r + "\n")
	}

	b.WriteString(fmt.Sprintf("\nFinancial estimate: %s (confidence: %s)\n",
		format.FmtCurrency(ins.FinancialImpact.EstimatedValue), ins.FinancialImpact.Confidence))
	b.WriteString("  " + ins.FinancialImpact.Basis + "\n")

	b.WriteString("\nPriority actions:\n")
	for _, a := range ins.PriorityActions {
		b.WriteString(fmt.Sprintf("  %d. %s\n", a.Priority, a.Action))
	}

	b.WriteString("\n" + ins.ParetoValidation + "\n")
	return b.String()
}

func buildOptions() ([]pareto.Option, error) {
	var opts []pareto.Option
	if analyzeFlags.idField != "" {
		opts = append(opts, pareto.WithIDField(analyzeFlags.idField))
	}
	if analyzeFlags.ascending {
		opts = append(opts, pareto.Ascending())
	}
	if analyzeFlags.band != "" {
		low, high, err := parseBand(analyzeFlags.band)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pareto.WithBand(low, high))
	}
	return opts, nil
}

// parseBand parses "0.75,0.85" into its bounds.
func parseBand(s string) (low, high float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("band must be low,high (e.g. 0.75,0.85), got %q", s)
	}
	low, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("band low bound: %w", err)
	}
	high, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("band high bound: %w", err)
	}
	if low < 0 || high > 1 || low >= high {
		return 0, 0, fmt.Errorf("band bounds must satisfy 0 <= low < high <= 1, got %g,%g", low, high)
	}
	return low, high, nil
}

func splitFields(s string) []string {
	var fields []string
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
