// Package numparse converts operator-entered decimal text into float64.
//
// Inputs come from free-text form fields where both "1.234,56" and
// "1234.56" are valid spellings of the same number. Parse never returns
// an error; malformed input yields NaN and callers substitute their own
// fallback via Clamp.
package numparse

import (
	"math"
	"strconv"
	"strings"
)

// Parse interprets s as a decimal number, tolerating pt-BR locale
// spellings. A comma anywhere makes comma the decimal separator and
// demotes every dot to a grouping separator. A trailing separator is
// malformed and yields NaN, as does empty or non-numeric input.
func Parse(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	s = strings.Join(strings.Fields(s), "")
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, ",") {
		return math.NaN()
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) {
		return math.NaN()
	}
	return n
}

// Clamp returns v when finite, otherwise fallback.
func Clamp(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
