package reply

import (
	"strings"
	"testing"

	"github.com/fmuoria/resume-screener/internal/models"
)

func TestGenerateSuitable(t *testing.T) {
	skills := []string{"aws", "docker", "go", "kubernetes", "python", "sql", "terraform"}
	body := Generate("Jane Smith", models.Suitable, skills, 87.5)

	if !strings.HasPrefix(body, "Hi Jane Smith,") {
		t.Errorf("missing salutation: %q", body)
	}
	if !strings.Contains(body, "match: 87.5%") {
		t.Errorf("missing match percentage: %q", body)
	}
	if !strings.Contains(body, "next stage") {
		t.Errorf("missing advancement wording: %q", body)
	}
	// Only the first six skills are cited.
	if !strings.Contains(body, "aws, docker, go, kubernetes, python, sql") {
		t.Errorf("missing skill list: %q", body)
	}
	if strings.Contains(body, "terraform") {
		t.Errorf("cited more than six skills: %q", body)
	}
}

func TestGenerateMaybe(t *testing.T) {
	skills := []string{"aws", "docker", "go", "python", "sql", "terraform"}
	body := Generate("John Doe", models.Maybe, skills, 50.0)

	if !strings.Contains(body, "Your match is 50%") {
		t.Errorf("missing match percentage: %q", body)
	}
	if !strings.Contains(body, "screening call") {
		t.Errorf("missing further-review wording: %q", body)
	}
	// Only the first five skills are cited.
	if strings.Contains(body, "terraform") {
		t.Errorf("cited more than five skills: %q", body)
	}
}

func TestGenerateRejectExposesNoDetail(t *testing.T) {
	body := Generate("Jane Smith", models.Reject, []string{"python", "sql"}, 100.0)

	if strings.Contains(body, "%") {
		t.Errorf("reject reply exposes a percentage: %q", body)
	}
	if strings.Contains(body, "python") || strings.Contains(body, "sql") {
		t.Errorf("reject reply exposes skills: %q", body)
	}
	if !strings.Contains(body, "not be proceeding") {
		t.Errorf("missing decline wording: %q", body)
	}
}

func TestGenerateFallbacks(t *testing.T) {
	tests := []struct {
		name           string
		classification models.Classification
		wantContains   string
	}{
		{"Suitable without skills", models.Suitable, "relevant skills"},
		{"Maybe without skills", models.Maybe, "listed skills"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := Generate("", tt.classification, nil, 75.0)
			if !strings.HasPrefix(body, "Hi Candidate,") {
				t.Errorf("missing generic salutation: %q", body)
			}
			if !strings.Contains(body, tt.wantContains) {
				t.Errorf("missing fallback phrase %q: %q", tt.wantContains, body)
			}
		})
	}
}

func TestGenerateUnknownClassificationFallsBackToDecline(t *testing.T) {
	body := Generate("Jane", models.Unscreened, []string{"python"}, 0.0)
	if !strings.Contains(body, "not be proceeding") {
		t.Errorf("unexpected body for unknown classification: %q", body)
	}
}

func TestGenerateSignature(t *testing.T) {
	for _, c := range []models.Classification{models.Suitable, models.Maybe, models.Reject} {
		body := Generate("Jane", c, []string{"python"}, 80.0)
		if !strings.HasSuffix(body, "Best regards,\nRecruitment Team") {
			t.Errorf("missing signature for %s: %q", c, body)
		}
	}
}
