// Package mcp exposes the decomposition engine and insight generator as MCP
// tools over stdio. The server holds no per-call state — every tool is a
// pure function of its arguments, so concurrent calls need no coordination.
package mcp

import (
	"context"
	"fmt"

	"vitalfew/internal/insight"
	"vitalfew/internal/logging"
	"vitalfew/internal/pareto"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP SDK server around the analysis tools.
type Server struct {
	MCPServer *sdkmcp.Server

	// Multipliers backs the financial estimate in generate_insights.
	// Defaults to the embedded table; replace before Run to inject a tuned
	// deployment table.
	Multipliers insight.Table
}

// NewServer creates an MCP server with the Pareto analysis tools registered.
func NewServer() *Server {
	s := &Server{Multipliers: insight.DefaultTable()}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "vitalfew", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "analyze_pareto",
		Description: "Rank records by an impact field and return the 80/20 breakdown: sorted items, cumulative contributions, the vital-few subset, and Pareto validation.",
	}, s.handleAnalyzePareto)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "decompose_dimensions",
		Description: "Run one independent Pareto decomposition per impact field. Dimensions that fail validation come back null; the rest still succeed.",
	}, s.handleDecomposeDimensions)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "generate_insights",
		Description: "Decompose records and return narrative insights: summary, key findings, recommendations, a heuristic financial estimate, and priority actions.",
	}, s.handleGenerateInsights)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "compare_scenarios",
		Description: "Compare total impact between baseline and scenario record sets and return the reduction with a one-line recommendation.",
	}, s.handleCompareScenarios)
}

// --- Tool input/output types ---

type analyzeParetoInput struct {
	Records     []map[string]any `json:"records" jsonschema:"homogeneous records to rank"`
	ImpactField string           `json:"impact_field" jsonschema:"numeric field to rank by"`
	IDField     string           `json:"id_field,omitempty" jsonschema:"field used for output labels (default id)"`
	Ascending   bool             `json:"ascending,omitempty" jsonschema:"rank least impactful first"`
	BandLow     float64          `json:"band_low,omitempty" jsonschema:"lower Pareto validation bound (default 0.75)"`
	BandHigh    float64          `json:"band_high,omitempty" jsonschema:"upper Pareto validation bound (default 0.85)"`
}

type analyzeParetoOutput struct {
	Result          *pareto.Result       `json:"result"`
	TopContributors []pareto.Contributor `json:"top_contributors"`
}

type decomposeDimensionsInput struct {
	Records      []map[string]any `json:"records" jsonschema:"homogeneous records to rank"`
	ImpactFields []string         `json:"impact_fields" jsonschema:"numeric fields, one decomposition each"`
	IDField      string           `json:"id_field,omitempty" jsonschema:"field used for output labels (default id)"`
}

type decomposeDimensionsOutput struct {
	Results map[string]*pareto.Result `json:"results"`
	Failed  []string                  `json:"failed,omitempty"`
}

type generateInsightsInput struct {
	Records         []map[string]any `json:"records" jsonschema:"homogeneous records to rank"`
	ImpactField     string           `json:"impact_field" jsonschema:"numeric field to rank by"`
	IDField         string           `json:"id_field,omitempty" jsonschema:"field used for output labels (default id)"`
	BusinessContext string           `json:"business_context,omitempty" jsonschema:"what the impact adds up to, e.g. release delays"`
	MetricName      string           `json:"metric_name,omitempty" jsonschema:"unit name of the impact metric; keys the financial multiplier lookup"`
	ItemType        string           `json:"item_type,omitempty" jsonschema:"plural name of the items, e.g. issues"`
}

type generateInsightsOutput struct {
	Result   *pareto.Result    `json:"result"`
	Insights *insight.Insights `json:"insights"`
}

type compareScenariosInput struct {
	BaselineRecords []map[string]any `json:"baseline_records" jsonschema:"current-state records"`
	ScenarioRecords []map[string]any `json:"scenario_records" jsonschema:"projected records after the intervention"`
	ImpactField     string           `json:"impact_field" jsonschema:"numeric field to rank by"`
	ScenarioName    string           `json:"scenario_name,omitempty" jsonschema:"label for the scenario in the recommendation"`
}

type compareScenariosOutput struct {
	Comparison *insight.Comparison `json:"comparison"`
}

// --- Tool handlers ---

func (s *Server) handleAnalyzePareto(ctx context.Context, _ *sdkmcp.CallToolRequest, input analyzeParetoInput) (*sdkmcp.CallToolResult, analyzeParetoOutput, error) {
	res, err := pareto.Decompose(toRecords(input.Records), input.ImpactField,
		analyzeOptions(input.IDField, input.Ascending, input.BandLow, input.BandHigh)...)
	if err != nil {
		return nil, analyzeParetoOutput{}, fmt.Errorf("analyze_pareto: %w", err)
	}

	logging.New("mcp").Info("decomposed",
		"field", input.ImpactField, "items", len(res.SortedItems),
		"top_subset", res.TopSubsetSize(), "valid_pareto", res.IsValidPareto)

	return nil, analyzeParetoOutput{
		Result:          res,
		TopContributors: pareto.TopContributors(res),
	}, nil
}

func (s *Server) handleDecomposeDimensions(ctx context.Context, _ *sdkmcp.CallToolRequest, input decomposeDimensionsInput) (*sdkmcp.CallToolResult, decomposeDimensionsOutput, error) {
	if len(input.ImpactFields) == 0 {
		return nil, decomposeDimensionsOutput{}, fmt.Errorf("decompose_dimensions: impact_fields is required")
	}

	results := pareto.DecomposeDimensions(toRecords(input.Records), input.ImpactFields,
		analyzeOptions(input.IDField, false, 0, 0)...)

	var failed []string
	for _, field := range input.ImpactFields {
		if results[field] == nil {
			failed = append(failed, field)
		}
	}
	if len(failed) > 0 {
		logging.New("mcp").Warn("dimensions failed validation", "fields", failed)
	}

	return nil, decomposeDimensionsOutput{Results: results, Failed: failed}, nil
}

func (s *Server) handleGenerateInsights(ctx context.Context, _ *sdkmcp.CallToolRequest, input generateInsightsInput) (*sdkmcp.CallToolResult, generateInsightsOutput, error) {
	res, err := pareto.Decompose(toRecords(input.Records), input.ImpactField,
		analyzeOptions(input.IDField, false, 0, 0)...)
	if err != nil {
		return nil, generateInsightsOutput{}, fmt.Errorf("generate_insights: %w", err)
	}

	ins, err := insight.Generate(res, insight.Context{
		Business:    input.BusinessContext,
		MetricName:  input.MetricName,
		ItemType:    input.ItemType,
		Multipliers: s.Multipliers,
	})
	if err != nil {
		return nil, generateInsightsOutput{}, fmt.Errorf("generate_insights: %w", err)
	}

	return nil, generateInsightsOutput{Result: res, Insights: ins}, nil
}

func (s *Server) handleCompareScenarios(ctx context.Context, _ *sdkmcp.CallToolRequest, input compareScenariosInput) (*sdkmcp.CallToolResult, compareScenariosOutput, error) {
	baseline, err := pareto.Decompose(toRecords(input.BaselineRecords), input.ImpactField)
	if err != nil {
		return nil, compareScenariosOutput{}, fmt.Errorf("compare_scenarios baseline: %w", err)
	}
	scenario, err := pareto.Decompose(toRecords(input.ScenarioRecords), input.ImpactField)
	if err != nil {
		return nil, compareScenariosOutput{}, fmt.Errorf("compare_scenarios scenario: %w", err)
	}

	cmp, err := insight.CompareScenarios(baseline, scenario, input.ScenarioName)
	if err != nil {
		return nil, compareScenariosOutput{}, fmt.Errorf("compare_scenarios: %w", err)
	}
	return nil, compareScenariosOutput{Comparison: cmp}, nil
}

func toRecords(raw []map[string]any) []pareto.Record {
	records := make([]pareto.Record, len(raw))
	for i, m := range raw {
		records[i] = pareto.Record(m)
	}
	return records
}

func analyzeOptions(idField string, ascending bool, bandLow, bandHigh float64) []pareto.Option {
	var opts []pareto.Option
	if idField != "" {
		opts = append(opts, pareto.WithIDField(idField))
	}
	if ascending {
		opts = append(opts, pareto.Ascending())
	}
	if bandLow != 0 || bandHigh != 0 {
		low, high := bandLow, bandHigh
		if low == 0 {
			low = pareto.DefaultBandLow
		}
		if high == 0 {
			high = pareto.DefaultBandHigh
		}
		opts = append(opts, pareto.WithBand(low, high))
	}
	return opts
}
