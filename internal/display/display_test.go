package display_test

import (
	"testing"

	"vitalfew/internal/display"
)

func TestMetricLabel(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"delay_days", "Delay Days"},
		{"support_tickets", "Support Tickets"},
		{"render_minutes", "render minutes"}, // unknown keys humanize
		{"plain", "plain"},
	}
	for _, tc := range tests {
		if got := display.MetricLabel(tc.key); got != tc.want {
			t.Errorf("MetricLabel(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestMetricWithKey(t *testing.T) {
	if got := display.MetricWithKey("delay_days"); got != "Delay Days (delay_days)" {
		t.Errorf("MetricWithKey = %q", got)
	}
	if got := display.MetricWithKey("mystery"); got != "mystery" {
		t.Errorf("unknown key should pass through, got %q", got)
	}
}

func TestItemType(t *testing.T) {
	if got := display.ItemType("churned_subscribers"); got != "churn cohorts" {
		t.Errorf("ItemType = %q, want churn cohorts", got)
	}
	if got := display.ItemType("unknown_metric"); got != "items" {
		t.Errorf("unknown key should fall back to items, got %q", got)
	}
}

func TestBusinessContext(t *testing.T) {
	if got := display.BusinessContext("delay_days"); got != "release delays" {
		t.Errorf("BusinessContext = %q, want release delays", got)
	}
	if got := display.BusinessContext("render_minutes"); got != "render minutes" {
		t.Errorf("unknown key should humanize, got %q", got)
	}
}
