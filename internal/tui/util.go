package tui

import (
	"math"
	"strconv"
	"strings"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// norm maps v from [lo, hi] to [0, 1]; a flat span maps to the middle.
func norm(v, lo, hi int64) float64 {
	if hi <= lo {
		return 0.5
	}
	return (float64(v) - float64(lo)) / (float64(hi) - float64(lo))
}

// lerp is the inverse of norm, rounded to the nearest integer and clamped to
// the int64 range.
func lerp(lo, hi int64, t float64) int64 {
	v := math.Round(float64(lo) + t*(float64(hi)-float64(lo)))
	switch {
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}

// groupDigits formats n with an underscore every three digits, like Go literals.
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('_')
		}
		b.WriteRune(ch)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
