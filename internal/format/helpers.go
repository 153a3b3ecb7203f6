package format

import (
	"fmt"
	"strings"
)

// FmtPercent formats a 0..1 ratio as a percentage with one decimal.
func FmtPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

// FmtCurrency formats a dollar figure with thousands separators and cents.
func FmtCurrency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	out := "$" + b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FmtImpact formats an impact value: integers without decimals, fractional
// values with two.
func FmtImpact(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// Truncate shortens s to maxLen characters, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// BoolMark returns "✓" for true and "✗" for false.
func BoolMark(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}
