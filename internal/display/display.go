// Package display provides human-readable names for metric keys.
//
// Rule: keys are for machines, words are for humans. Use these functions in
// CLI output and insight text. Keep raw keys for JSON fields, map lookups,
// and equality comparisons.
package display

import "strings"

// --- Impact Metrics ---

var metricLabels = map[string]string{
	"delay_days":          "Delay Days",
	"churned_subscribers": "Churned Subscribers",
	"subscribers_lost":    "Subscribers Lost",
	"complaint_count":     "Complaints",
	"support_tickets":     "Support Tickets",
	"error_count":         "Errors",
	"playback_failures":   "Playback Failures",
	"watch_hours":         "Watch Hours",
}

// MetricLabel returns the human-readable name for a metric key.
// Unknown keys are humanized: "render_minutes" -> "render minutes".
func MetricLabel(key string) string {
	if name, ok := metricLabels[key]; ok {
		return name
	}
	return strings.ReplaceAll(key, "_", " ")
}

// MetricWithKey returns "Delay Days (delay_days)" format for dual-audience
// contexts.
func MetricWithKey(key string) string {
	if name, ok := metricLabels[key]; ok {
		return name + " (" + key + ")"
	}
	return key
}

// --- Item Types ---

var itemTypes = map[string]string{
	"delay_days":          "production issues",
	"churned_subscribers": "churn cohorts",
	"subscribers_lost":    "churn cohorts",
	"complaint_count":     "complaint themes",
	"support_tickets":     "complaint themes",
	"error_count":         "production issues",
	"playback_failures":   "content titles",
	"watch_hours":         "content titles",
}

// ItemType returns the plural item name conventionally analyzed under a
// metric key, for default insight wording. Unknown keys fall back to "items".
func ItemType(key string) string {
	if name, ok := itemTypes[key]; ok {
		return name
	}
	return "items"
}

// --- Business Context ---

var businessContexts = map[string]string{
	"delay_days":          "release delays",
	"churned_subscribers": "subscriber churn",
	"subscribers_lost":    "subscriber churn",
	"complaint_count":     "customer complaints",
	"support_tickets":     "support load",
	"error_count":         "production errors",
	"playback_failures":   "playback failures",
	"watch_hours":         "viewing time",
}

// BusinessContext returns the default business-context phrase for a metric
// key. Unknown keys humanize like MetricLabel.
func BusinessContext(key string) string {
	if phrase, ok := businessContexts[key]; ok {
		return phrase
	}
	return strings.ReplaceAll(key, "_", " ")
}
