package screening

import (
	"regexp"
	"sort"
	"strings"
)

// FindSkillMatches scans resume text for each of the given skills and
// returns the sorted set of skills found. Matching happens on normalized
// text: multi-word skills are matched as literal substrings, single tokens
// must appear as standalone tokens. A token boundary is any transition
// between [a-z0-9+#] and anything else, including the start and end of the
// text, so "c++" and "c#" match as whole tokens while "java" does not match
// inside "javascript".
func FindSkillMatches(text string, skills []string) []string {
	t := Normalize(text)
	found := make(map[string]struct{})
	for _, skill := range skills {
		kw := strings.ToLower(strings.TrimSpace(skill))
		if kw == "" {
			continue
		}
		if _, ok := found[kw]; ok {
			continue
		}
		if strings.Contains(kw, " ") {
			if strings.Contains(t, kw) {
				found[kw] = struct{}{}
			}
			continue
		}
		if tokenPattern(kw).MatchString(t) {
			found[kw] = struct{}{}
		}
	}
	matches := make([]string, 0, len(found))
	for kw := range found {
		matches = append(matches, kw)
	}
	sort.Strings(matches)
	return matches
}

// tokenPattern builds the boundary-anchored pattern for a single-token
// skill. regexp.QuoteMeta keeps '+' and '#' literal.
func tokenPattern(kw string) *regexp.Regexp {
	return regexp.MustCompile(`(^|[^a-z0-9+#])` + regexp.QuoteMeta(kw) + `([^a-z0-9+#]|$)`)
}
