package screening

import (
	"math"
	"strconv"
)

// ComputeMatchPercentage returns the fraction of required skills present in
// found, as a percentage rounded to two decimals, together with the matched
// and total counts. An empty required list yields 0.0 rather than a vacuous
// full match: with no configuration there is nothing to score.
func ComputeMatchPercentage(required, found []string) (pct float64, matched, total int) {
	if len(required) == 0 {
		return 0.0, 0, 0
	}
	foundSet := make(map[string]struct{}, len(found))
	for _, s := range found {
		foundSet[s] = struct{}{}
	}
	total = len(required)
	for _, s := range required {
		if _, ok := foundSet[s]; ok {
			matched++
		}
	}
	pct = math.Round(float64(matched)/float64(total)*100.0*100.0) / 100.0
	return pct, matched, total
}

// FormatPercent renders a match percentage without trailing zeros, e.g.
// "100", "66.67", "50".
func FormatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64)
}
