package pareto

import (
	"fmt"
	"math"
	"sort"
)

// Defaults for the decomposition options.
const (
	DefaultIDField  = "id"
	DefaultBandLow  = 0.75
	DefaultBandHigh = 0.85

	// topShare is the fixed "vital few" fraction. The boundary is computed
	// by item count — ceil(topShare * n), minimum 1 — not by walking the
	// cumulative curve to the 80% crossing. The two sets coincide only for
	// well-behaved distributions; this count-based definition is kept for
	// compatibility with the original analysis.
	topShare = 0.20
)

// Band is the acceptable range for the top-subset contribution when deciding
// whether the distribution is a "classic" 80/20 pattern.
type Band struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether v falls inside the band, bounds inclusive.
func (b Band) Contains(v float64) bool {
	return b.Low <= v && v <= b.High
}

type options struct {
	idField   string
	ascending bool
	band      Band
}

// Option configures a decomposition.
type Option func(*options)

// WithIDField sets the record key used for output labeling (default "id").
func WithIDField(field string) Option {
	return func(o *options) {
		if field != "" {
			o.idField = field
		}
	}
}

// Ascending ranks least-impactful first, for inverse analysis.
func Ascending() Option {
	return func(o *options) { o.ascending = true }
}

// WithBand overrides the Pareto validation band (default 0.75–0.85).
func WithBand(low, high float64) Option {
	return func(o *options) { o.band = Band{Low: low, High: high} }
}

// Result is the ranked, cumulative, validated breakdown of one
// (item set, impact field) pair.
type Result struct {
	ImpactField string `json:"impact_field"`
	IDField     string `json:"id_field"`
	Ascending   bool   `json:"ascending,omitempty"`

	// SortedItems holds the input records reordered by impact in the
	// requested direction. Ties keep their original relative order.
	SortedItems []Record `json:"sorted_items"`

	// CumulativeContributions is parallel to SortedItems: running impact
	// total divided by grand total, rounded to 4 decimal places. Always
	// non-decreasing; last element is 1.0.
	CumulativeContributions []float64 `json:"cumulative_contributions"`

	// TopSubsetIndices are the leading max(1, ceil(0.20*n)) indices into
	// SortedItems — the vital few, by count.
	TopSubsetIndices []int `json:"top_subset_indices"`

	// TopSubsetContribution is the cumulative contribution at the boundary
	// of the top subset.
	TopSubsetContribution float64 `json:"top_subset_contribution"`

	TotalImpact   float64 `json:"total_impact"`
	IsValidPareto bool    `json:"is_valid_pareto"`
	Band          Band    `json:"validation_band"`
}

// TopSubsetSize is len(TopSubsetIndices), for readability at call sites.
func (r *Result) TopSubsetSize() int { return len(r.TopSubsetIndices) }

// Decompose ranks items by impactField and produces a validated Pareto
// breakdown. It is deterministic: identical input yields identical output,
// including tie order. The caller's slice and records are left untouched.
func Decompose(items []Record, impactField string, opts ...Option) (*Result, error) {
	o := options{
		idField: DefaultIDField,
		band:    Band{Low: DefaultBandLow, High: DefaultBandHigh},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("decompose %q: %w", impactField, ErrEmptyInput)
	}

	present := false
	impacts := make([]float64, len(items))
	total := 0.0
	for i, item := range items {
		if item.Has(impactField) {
			present = true
		}
		impacts[i] = item.Impact(impactField)
		total += impacts[i]
	}
	if !present {
		return nil, fmt.Errorf("decompose %q: %w", impactField, ErrMissingField)
	}
	if total == 0 {
		return nil, fmt.Errorf("decompose %q: %w", impactField, ErrZeroTotal)
	}

	// Sort an index permutation, not the caller's slice.
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if o.ascending {
			return impacts[order[a]] < impacts[order[b]]
		}
		return impacts[order[a]] > impacts[order[b]]
	})

	sorted := make([]Record, len(items))
	cumulative := make([]float64, len(items))
	running := 0.0
	for rank, idx := range order {
		sorted[rank] = items[idx]
		running += impacts[idx]
		cumulative[rank] = round4(running / total)
	}

	subsetSize := topSubsetSize(len(items))
	subset := make([]int, subsetSize)
	for i := range subset {
		subset[i] = i
	}

	contribution := cumulative[subsetSize-1]

	return &Result{
		ImpactField:             impactField,
		IDField:                 o.idField,
		Ascending:               o.ascending,
		SortedItems:             sorted,
		CumulativeContributions: cumulative,
		TopSubsetIndices:        subset,
		TopSubsetContribution:   contribution,
		TotalImpact:             total,
		IsValidPareto:           o.band.Contains(contribution),
		Band:                    o.band,
	}, nil
}

// Contributor is one top-subset item annotated with its individual and
// cumulative share of total impact.
type Contributor struct {
	Rank         int     `json:"rank"`
	ID           string  `json:"id"`
	Impact       float64 `json:"impact"`
	Contribution float64 `json:"contribution"`
	Cumulative   float64 `json:"cumulative_contribution"`
	IsTop        bool    `json:"is_top"`
}

// TopContributors projects the top subset of res into labeled entries with
// 1-based ranks. A convenience view; no computation beyond what Decompose
// already produced.
func TopContributors(res *Result) []Contributor {
	out := make([]Contributor, 0, len(res.TopSubsetIndices))
	for _, idx := range res.TopSubsetIndices {
		item := res.SortedItems[idx]
		impact := item.Impact(res.ImpactField)
		out = append(out, Contributor{
			Rank:         idx + 1,
			ID:           item.Label(res.IDField),
			Impact:       impact,
			Contribution: round4(impact / res.TotalImpact),
			Cumulative:   res.CumulativeContributions[idx],
			IsTop:        true,
		})
	}
	return out
}

// topSubsetSize returns max(1, ceil(0.20 * n)).
func topSubsetSize(n int) int {
	size := int(math.Ceil(topShare * float64(n)))
	if size < 1 {
		size = 1
	}
	return size
}

// round4 rounds to 4 decimal places, enough to keep ratio output free of
// floating-point display noise.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
