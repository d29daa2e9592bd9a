package screening

import (
	"strings"
	"testing"

	"github.com/fmuoria/resume-screener/internal/models"
)

func TestThresholdClass(t *testing.T) {
	tests := []struct {
		pct  float64
		want models.Classification
	}{
		{100.0, models.Suitable},
		{70.0, models.Suitable},
		{69.99, models.Maybe},
		{40.0, models.Maybe},
		{39.99, models.Reject},
		{0.0, models.Reject},
	}

	for _, tt := range tests {
		if got := thresholdClass(tt.pct); got != tt.want {
			t.Errorf("thresholdClass(%v) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		required   []string
		found      []string
		critical   []string
		want       models.Classification
		wantPct    float64
		wantReason string
	}{
		{
			name:       "Full required match is suitable",
			required:   []string{"python", "sql"},
			found:      []string{"python", "sql"},
			critical:   nil,
			want:       models.Suitable,
			wantPct:    100.0,
			wantReason: "2/2 required skills matched (100%)",
		},
		{
			name:       "Half match is maybe",
			required:   []string{"python", "sql", "aws", "machine learning"},
			found:      []string{"python", "sql"},
			critical:   nil,
			want:       models.Maybe,
			wantPct:    50.0,
			wantReason: "2/4 required skills matched (50%)",
		},
		{
			name:       "Low match is reject",
			required:   []string{"python", "sql", "aws"},
			found:      []string{"python"},
			critical:   nil,
			want:       models.Reject,
			wantPct:    33.33,
			wantReason: "1/3 required skills matched (33.33%)",
		},
		{
			name:       "Missing critical skill overrides a perfect score",
			required:   []string{"python", "sql"},
			found:      []string{"python", "sql"},
			critical:   []string{"aws"},
			want:       models.Reject,
			wantPct:    100.0,
			wantReason: "Missing critical skills: aws",
		},
		{
			name:       "Present critical skill does not reject",
			required:   []string{"python", "sql"},
			found:      []string{"aws", "python", "sql"},
			critical:   []string{"aws"},
			want:       models.Suitable,
			wantPct:    100.0,
			wantReason: "2/2 required skills matched (100%)",
		},
		{
			name:       "Blank critical entries never cause rejection",
			required:   []string{"python"},
			found:      []string{"python"},
			critical:   []string{"", "  "},
			want:       models.Suitable,
			wantPct:    100.0,
			wantReason: "1/1 required skills matched (100%)",
		},
		{
			name:       "Empty required scores zero and rejects",
			required:   []string{},
			found:      []string{"python", "sql"},
			critical:   nil,
			want:       models.Reject,
			wantPct:    0.0,
			wantReason: "0/0 required skills matched (0%)",
		},
		{
			name:       "Multiple missing critical skills are listed",
			required:   []string{"python"},
			found:      []string{"python"},
			critical:   []string{"aws", "kubernetes"},
			want:       models.Reject,
			wantPct:    100.0,
			wantReason: "Missing critical skills: aws, kubernetes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, pct, reason := Classify(tt.required, tt.found, tt.critical)
			if got != tt.want {
				t.Errorf("classification = %s, want %s", got, tt.want)
			}
			if pct != tt.wantPct {
				t.Errorf("pct = %v, want %v", pct, tt.wantPct)
			}
			if reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}

// The end-to-end scenario from the screening rules: a strong required match
// still rejects when a critical skill is absent from the resume.
func TestClassifyCriticalOverrideScenario(t *testing.T) {
	text := "Python developer with SQL experience, no cloud."
	required := []string{"python", "sql"}
	critical := []string{"aws"}

	found := FindSkillMatches(text, append(append([]string{}, required...), critical...))
	if len(found) != 2 || found[0] != "python" || found[1] != "sql" {
		t.Fatalf("found = %v, want [python sql]", found)
	}

	classification, pct, reason := Classify(required, found, critical)
	if classification != models.Reject {
		t.Errorf("classification = %s, want Reject", classification)
	}
	if pct != 100.0 {
		t.Errorf("pct = %v, want 100", pct)
	}
	if !strings.Contains(reason, "Missing critical skills: aws") {
		t.Errorf("reason = %q, want mention of missing aws", reason)
	}
}
