package dom

import (
	"strconv"
	"strings"
)

// Px formats a pixel quantity as a CSS length value.
func Px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// ParsePx extracts the numeric pixel quantity from a CSS value. Values
// that carry no parseable number ("auto", "none", "") yield 0, matching
// how margin and padding reads are folded into offset math.
func ParsePx(value string) float64 {
	trimmed := strings.TrimSpace(value)
	trimmed = strings.TrimSuffix(trimmed, "px")
	n, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64)
	if err != nil {
		return 0
	}
	return n
}
