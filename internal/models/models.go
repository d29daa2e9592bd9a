package models

import (
	"strings"

	"github.com/google/uuid"
)

// Classification is the screening outcome for a candidate.
type Classification string

const (
	Unscreened Classification = "Unscreened"
	Suitable   Classification = "Suitable"
	Maybe      Classification = "Maybe"
	Reject     Classification = "Reject"
)

// Candidate represents one ingested resume and its screening state.
// A candidate is created Unscreened; a screening pass fills in FoundSkills,
// Classification, MatchPct and Reason. Re-screening with the same skill
// lists and text yields identical output.
type Candidate struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"` // file base name
	Path           string         `json:"path"`
	Text           string         `json:"-"` // extracted resume text, may be empty
	FoundSkills    []string       `json:"found_skills"`
	Classification Classification `json:"classification"`
	MatchPct       float64        `json:"match_pct"`
	Reason         string         `json:"reason"`
}

// NewCandidate creates an unscreened candidate for an ingested file.
func NewCandidate(name, path, text string) *Candidate {
	return &Candidate{
		ID:             uuid.New(),
		Name:           name,
		Path:           path,
		Text:           text,
		FoundSkills:    []string{},
		Classification: Unscreened,
	}
}

// ScreeningResult is the per-candidate record handed to displays and exports.
type ScreeningResult struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Path           string         `json:"path"`
	Classification Classification `json:"classification"`
	MatchPct       float64        `json:"match_pct"`
	Reason         string         `json:"reason"`
	FoundSkills    []string       `json:"found_skills"`
}

// Result projects the candidate's current screening state.
func (c *Candidate) Result() ScreeningResult {
	skills := make([]string, len(c.FoundSkills))
	copy(skills, c.FoundSkills)
	return ScreeningResult{
		ID:             c.ID,
		Name:           c.Name,
		Path:           c.Path,
		Classification: c.Classification,
		MatchPct:       c.MatchPct,
		Reason:         c.Reason,
		FoundSkills:    skills,
	}
}

// Draft is a saved reply message for one screening result. Drafts are
// append-only: once written they are never mutated.
type Draft struct {
	CandidateFile  string         `json:"candidate_file"`
	Classification Classification `json:"classification"`
	MatchPct       float64        `json:"match_pct"`
	Reply          string         `json:"reply"`
	SavedAt        string         `json:"saved_at"` // RFC 3339
}

// ParseSkillList parses a comma-separated skill string into a trimmed,
// lowercased, de-duplicated list. Empty entries are discarded and the first
// occurrence order is preserved.
func ParseSkillList(raw string) []string {
	skills := []string{}
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		s := strings.ToLower(strings.TrimSpace(part))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		skills = append(skills, s)
	}
	return skills
}
