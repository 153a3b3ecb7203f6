// Package pareto implements the 80/20 decomposition engine: rank a set of
// scored records by an impact field, compute cumulative contributions, and
// check whether the distribution matches the classical Pareto pattern.
//
// Both entry points are pure functions over caller data. Records are never
// mutated; results carry no identity beyond the call that produced them.
package pareto

import "fmt"

// Record is an opaque, caller-defined key/value mapping. The engine only
// requires that records expose a numeric impact field and, for labeling,
// an identifier field.
type Record map[string]any

// Impact returns the numeric value of field. Missing or non-numeric values
// read as 0 — a single bad record degrades, it does not abort the analysis.
func (r Record) Impact(field string) float64 {
	v, ok := r[field]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		return 0
	}
}

// Has reports whether field is present on the record at all, regardless of
// its type.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Label returns the string form of the identifier field, or "(unlabeled)"
// when the field is absent. IDs are labels only; uniqueness is not required.
func (r Record) Label(field string) string {
	v, ok := r[field]
	if !ok {
		return "(unlabeled)"
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
