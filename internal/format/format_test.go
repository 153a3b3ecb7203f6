package format_test

import (
	"strings"
	"testing"

	"vitalfew/internal/format"
)

func TestASCII_BasicTable(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("Rank", "ID", "Share")
	tb.Row(1, "PROD-41", "38.5%")
	tb.Row(2, "PROD-7", "21.0%")
	out := tb.String()

	if !strings.Contains(out, "Rank") {
		t.Errorf("expected header 'Rank' in output:\n%s", out)
	}
	if !strings.Contains(out, "PROD-41") {
		t.Errorf("expected 'PROD-41' in output:\n%s", out)
	}
	// ASCII mode uses StyleLight which has box-drawing chars
	if !strings.Contains(out, "───") {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
}

func TestMarkdown_BasicTable(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("Dimension", "Contribution")
	tb.Row("Delay Days", "81.2%")
	tb.Row("Support Tickets", "64.0%")
	out := tb.String()

	if !strings.Contains(out, "| Dimension") {
		t.Errorf("expected markdown header with '| Dimension':\n%s", out)
	}
	if !strings.Contains(out, "---") {
		t.Errorf("expected markdown separator '---':\n%s", out)
	}
}

func TestTable_FooterAndAlign(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("ID", "Impact")
	tb.Row("a", 120)
	tb.Row("b", 80)
	tb.Footer("TOTAL", 200)
	tb.Columns(format.ColumnConfig{Number: 2, Align: format.AlignRight})
	out := tb.String()

	if !strings.Contains(out, "TOTAL") || !strings.Contains(out, "200") {
		t.Errorf("expected footer totals in output:\n%s", out)
	}
}

// --- Helper tests ---

func TestFmtPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0%"},
		{0.3333, "33.3%"},
		{0.8, "80.0%"},
		{1.0, "100.0%"},
	}
	for _, tc := range tests {
		if got := format.FmtPercent(tc.in); got != tc.want {
			t.Errorf("FmtPercent(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFmtCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{42.5, "$42.50"},
		{999.99, "$999.99"},
		{1000, "$1,000.00"},
		{400000, "$400,000.00"},
		{1234567.89, "$1,234,567.89"},
		{-1500, "-$1,500.00"},
	}
	for _, tc := range tests {
		if got := format.FmtCurrency(tc.in); got != tc.want {
			t.Errorf("FmtCurrency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFmtImpact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{300, "300"},
		{0, "0"},
		{12.5, "12.50"},
		{-4, "-4"},
	}
	for _, tc := range tests {
		if got := format.FmtImpact(tc.in); got != tc.want {
			t.Errorf("FmtImpact(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello..."},
		{"ab", 3, "ab"},
		{"abcdef", 3, "abc"},
	}
	for _, tc := range tests {
		if got := format.Truncate(tc.in, tc.maxLen); got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.maxLen, got, tc.want)
		}
	}
}

func TestBoolMark(t *testing.T) {
	if format.BoolMark(true) != "✓" {
		t.Error("BoolMark(true) should be ✓")
	}
	if format.BoolMark(false) != "✗" {
		t.Error("BoolMark(false) should be ✗")
	}
}
