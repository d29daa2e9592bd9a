package models

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestParseSkillList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "Trims and lowercases",
			raw:  " Python , SQL,  AWS ",
			want: []string{"python", "sql", "aws"},
		},
		{
			name: "Drops empty entries",
			raw:  "python,,sql, ,",
			want: []string{"python", "sql"},
		},
		{
			name: "De-duplicates preserving first occurrence",
			raw:  "python, SQL, Python, sql",
			want: []string{"python", "sql"},
		},
		{
			name: "Multi-word skills survive",
			raw:  "machine learning, sql",
			want: []string{"machine learning", "sql"},
		},
		{
			name: "Empty input",
			raw:  "",
			want: []string{},
		},
		{
			name: "Only separators",
			raw:  " , , ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSkillList(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSkillList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNewCandidate(t *testing.T) {
	c := NewCandidate("resume.pdf", "/tmp/resume.pdf", "some text")

	if c.Classification != Unscreened {
		t.Errorf("new candidate classification = %s, want Unscreened", c.Classification)
	}
	if c.MatchPct != 0 {
		t.Errorf("new candidate match pct = %v, want 0", c.MatchPct)
	}
	if len(c.FoundSkills) != 0 {
		t.Errorf("new candidate found skills = %v, want empty", c.FoundSkills)
	}
	if c.ID == uuid.Nil {
		t.Error("new candidate has zero ID")
	}
}

func TestCandidateResultIsASnapshot(t *testing.T) {
	c := NewCandidate("resume.txt", "/tmp/resume.txt", "python")
	c.FoundSkills = []string{"python"}
	c.Classification = Suitable
	c.MatchPct = 100.0
	c.Reason = "1/1 required skills matched (100%)"

	r := c.Result()
	if r.ID != c.ID || r.Name != c.Name || r.Path != c.Path {
		t.Errorf("result identity mismatch: %+v vs %+v", r, c)
	}
	if r.Classification != Suitable || r.MatchPct != 100.0 {
		t.Errorf("result screening fields mismatch: %+v", r)
	}

	// Mutating the snapshot's skills must not touch the candidate.
	r.FoundSkills[0] = "changed"
	if c.FoundSkills[0] != "python" {
		t.Error("Result() shares the FoundSkills slice with the candidate")
	}
}
