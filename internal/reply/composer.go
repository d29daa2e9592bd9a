// Package reply turns a screening outcome into a recruiter reply message.
package reply

import (
	"fmt"
	"strings"

	"github.com/fmuoria/resume-screener/internal/models"
	"github.com/fmuoria/resume-screener/internal/screening"
)

const signature = "Best regards,\nRecruitment Team"

// Generate composes the reply body for a candidate. Suitable and Maybe
// templates cite the matched skills and percentage; the Reject template (and
// any other classification) is a generic decline that deliberately exposes
// no skill or percentage detail.
func Generate(name string, classification models.Classification, topSkills []string, matchPct float64) string {
	if name == "" {
		name = "Candidate"
	}

	switch classification {
	case models.Suitable:
		return fmt.Sprintf(
			"Hi %s,\n\n"+
				"Thank you for applying. We reviewed your resume and your skills (%s) "+
				"show a strong fit for the role (match: %s%%). We'll move your application to the next stage "+
				"and contact you soon with interview details.\n\n%s",
			name, skillSummary(topSkills, 6, "relevant skills"), screening.FormatPercent(matchPct), signature)
	case models.Maybe:
		return fmt.Sprintf(
			"Hi %s,\n\n"+
				"Thank you for applying. We see potential fit based on your skills (%s). "+
				"Your match is %s%%. We'll review further and may reach out for a short screening call.\n\n%s",
			name, skillSummary(topSkills, 5, "listed skills"), screening.FormatPercent(matchPct), signature)
	default:
		return fmt.Sprintf(
			"Hi %s,\n\n"+
				"Thank you for applying. At this time we will not be proceeding with your application. "+
				"We appreciate your interest and encourage you to apply for future openings that match your experience.\n\n%s",
			name, signature)
	}
}

// skillSummary joins up to limit skills, falling back to a generic phrase
// when the candidate has none.
func skillSummary(skills []string, limit int, fallback string) string {
	if len(skills) == 0 {
		return fallback
	}
	if len(skills) > limit {
		skills = skills[:limit]
	}
	return strings.Join(skills, ", ")
}
