package screening

import (
	"reflect"
	"sort"
	"testing"
)

func TestFindSkillMatches(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		skills []string
		want   []string
	}{
		{
			name:   "Case-insensitive matching",
			text:   "Senior PYTHON developer with Sql experience",
			skills: []string{"Python", "sql", "aws"},
			want:   []string{"python", "sql"},
		},
		{
			name:   "Word boundaries prevent substring hits",
			text:   "JavaScript developer",
			skills: []string{"java", "javascript"},
			want:   []string{"javascript"},
		},
		{
			name:   "Plus and hash tokens match whole tokens",
			text:   "Expert in C++ and C#, but no Cobol",
			skills: []string{"c++", "c#", "c"},
			want:   []string{"c#", "c++"},
		},
		{
			name:   "Multi-word phrase matches as substring",
			text:   "Machine-Learning engineer, deep learning focus",
			skills: []string{"machine learning", "deep learning", "reinforcement learning"},
			want:   []string{"deep learning", "machine learning"},
		},
		{
			name:   "Skills are trimmed and lowercased",
			text:   "python and sql",
			skills: []string{"  Python  ", "SQL", ""},
			want:   []string{"python", "sql"},
		},
		{
			name:   "Punctuation around tokens is ignored",
			text:   "Skills: python, sql; aws.",
			skills: []string{"python", "sql", "aws"},
			want:   []string{"aws", "python", "sql"},
		},
		{
			name:   "Empty skill list",
			text:   "python and sql",
			skills: []string{},
			want:   []string{},
		},
		{
			name:   "Empty text",
			text:   "",
			skills: []string{"python"},
			want:   []string{},
		},
		{
			name:   "Token at start and end of text",
			text:   "python experience in aws",
			skills: []string{"python", "aws"},
			want:   []string{"aws", "python"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindSkillMatches(tt.text, tt.skills)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindSkillMatches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindSkillMatchesIsSortedAndIdempotent(t *testing.T) {
	text := "Go, Python, SQL, AWS and Docker"
	skills := []string{"sql", "python", "docker", "aws", "go"}

	first := FindSkillMatches(text, skills)
	second := FindSkillMatches(text, skills)

	if !sort.StringsAreSorted(first) {
		t.Errorf("result is not sorted: %v", first)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("matching is not idempotent: %v vs %v", first, second)
	}
}

func TestFindSkillMatchesDuplicateSkillEntries(t *testing.T) {
	got := FindSkillMatches("python developer", []string{"python", "Python", " PYTHON "})
	want := []string{"python"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindSkillMatches() = %v, want %v", got, want)
	}
}
