package pareto_test

import (
	"testing"

	"vitalfew/internal/pareto"
)

func TestDecomposeDimensions_PartialFailure(t *testing.T) {
	items := []pareto.Record{
		{"id": "a", "delay_days": 12, "error_count": 0, "weight": 3},
		{"id": "b", "delay_days": 5, "error_count": 0, "weight": 1},
		{"id": "c", "delay_days": 2, "error_count": 0, "weight": 6},
	}
	fields := []string{"delay_days", "error_count", "weight", "absent"}

	results := pareto.DecomposeDimensions(items, fields)

	if len(results) != len(fields) {
		t.Fatalf("got %d entries, want %d (every dimension keyed)", len(results), len(fields))
	}
	if results["delay_days"] == nil {
		t.Error("delay_days dimension failed, want success")
	}
	if results["weight"] == nil {
		t.Error("weight dimension failed, want success")
	}
	if results["error_count"] != nil {
		t.Error("error_count dimension succeeded, want nil (zero total)")
	}
	if results["absent"] != nil {
		t.Error("absent dimension succeeded, want nil (missing field)")
	}
}

func TestDecomposeDimensions_IndependentResults(t *testing.T) {
	items := []pareto.Record{
		{"id": "a", "x": 90, "y": 1},
		{"id": "b", "x": 10, "y": 99},
	}
	results := pareto.DecomposeDimensions(items, []string{"x", "y"})

	x, y := results["x"], results["y"]
	if x == nil || y == nil {
		t.Fatalf("expected both dimensions to succeed, got x=%v y=%v", x, y)
	}
	if got := x.SortedItems[0].Label("id"); got != "a" {
		t.Errorf("x top item = %q, want a", got)
	}
	if got := y.SortedItems[0].Label("id"); got != "b" {
		t.Errorf("y top item = %q, want b", got)
	}
	if x.TotalImpact != 100 || y.TotalImpact != 100 {
		t.Errorf("totals = %v/%v, want 100/100", x.TotalImpact, y.TotalImpact)
	}
}

func TestDecomposeDimensions_AllFail(t *testing.T) {
	items := []pareto.Record{{"id": "a"}}
	results := pareto.DecomposeDimensions(items, []string{"u", "w"})
	for _, field := range []string{"u", "w"} {
		if res, ok := results[field]; !ok || res != nil {
			t.Errorf("results[%q] = %v (present=%v), want present nil entry", field, res, ok)
		}
	}
}
