package util

import "math"

// RoundPercent converts score/total into a whole percentage using
// round-half-up semantics (3/5 -> 60, 1/3 -> 33, 2/3 -> 67).
// The same function backs both server-side submission scoring and the
// session package's provisional score, so the two always agree.
func RoundPercent(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}
