// Package screening implements the deterministic resume screening engine:
// text normalization, skill matching, match scoring and classification.
package screening

import (
	"regexp"
	"strings"
)

// separatorRuns matches every run of characters that cannot be part of a
// skill token. '+' and '#' stay in so skills like "c++" and "c#" survive
// normalization as whole tokens.
var separatorRuns = regexp.MustCompile(`[^a-z0-9+#]+`)

// Normalize lowercases text and collapses every run of non-token characters
// to a single space. The result is padded with one leading and one trailing
// space so every token is surrounded by boundaries. Matching against the
// result is case-insensitive and punctuation-insensitive.
func Normalize(text string) string {
	t := strings.ToLower(text)
	t = separatorRuns.ReplaceAllString(t, " ")
	return " " + t + " "
}
