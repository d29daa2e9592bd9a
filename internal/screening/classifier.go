package screening

import (
	"fmt"
	"strings"

	"github.com/fmuoria/resume-screener/internal/models"
)

// Classification thresholds. Both bounds are inclusive at the bottom:
// [70,100] is Suitable, [40,70) is Maybe, [0,40) is Reject.
const (
	SuitableThreshold = 70.0
	MaybeThreshold    = 40.0
)

// Classify applies the screening rules to one candidate's found skills:
//
//   - any missing critical skill forces Reject, regardless of the match
//     percentage (even at 100%),
//   - otherwise the required-skill match percentage decides the tier.
//
// Blank critical entries are ignored and never cause rejection. The returned
// reason is a human-readable explanation of whichever rule fired.
func Classify(required, found, critical []string) (models.Classification, float64, string) {
	pct, matched, total := ComputeMatchPercentage(required, found)

	foundSet := make(map[string]struct{}, len(found))
	for _, s := range found {
		foundSet[s] = struct{}{}
	}
	var missingCritical []string
	for _, c := range critical {
		if strings.TrimSpace(c) == "" {
			continue
		}
		if _, ok := foundSet[c]; !ok {
			missingCritical = append(missingCritical, c)
		}
	}
	if len(missingCritical) > 0 {
		reason := "Missing critical skills: " + strings.Join(missingCritical, ", ")
		return models.Reject, pct, reason
	}

	reason := fmt.Sprintf("%d/%d required skills matched (%s%%)", matched, total, FormatPercent(pct))
	return thresholdClass(pct), pct, reason
}

// thresholdClass maps a match percentage to its classification tier.
func thresholdClass(pct float64) models.Classification {
	switch {
	case pct >= SuitableThreshold:
		return models.Suitable
	case pct >= MaybeThreshold:
		return models.Maybe
	default:
		return models.Reject
	}
}
