package reply

import (
	"regexp"
	"strings"
	"unicode"
)

const nameScanLines = 8

var nonAlpha = regexp.MustCompile(`[^A-Za-z\s]`)

// ExtractName scans the first few non-blank lines of resume text for
// something that looks like a person's name: a line whose first two words
// are both title-cased. It returns the two words joined by a space, or ""
// when no line qualifies. This is a best-effort heuristic and may misfire on
// letterhead or section headers.
func ExtractName(text string) string {
	if text == "" {
		return ""
	}
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(ln); s != "" {
			lines = append(lines, s)
			if len(lines) == nameScanLines {
				break
			}
		}
	}
	for _, ln := range lines {
		cleaned := nonAlpha.ReplaceAllString(ln, " ")
		parts := strings.Fields(cleaned)
		if len(parts) >= 2 && isTitleWord(parts[0]) && isTitleWord(parts[1]) {
			return parts[0] + " " + parts[1]
		}
	}
	return ""
}

// isTitleWord reports whether a word is title-cased: an uppercase first
// letter followed only by lowercase letters.
func isTitleWord(w string) bool {
	for i, r := range w {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if !unicode.IsLower(r) {
			return false
		}
	}
	return w != ""
}
