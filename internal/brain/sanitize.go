package brain

import (
	"regexp"
	"strings"
)

// suggestionLabelPattern matches a leading label the model sometimes puts in
// front of a continuation.
// Examples: "Next sentence: ", "**Suggestion:** ", "continuation - "
var suggestionLabelPattern = regexp.MustCompile(`(?i)^\**\s*(next sentence|suggestion|continuation)\s*\**\s*[:\-]\s*\**\s*`)

// SanitizeSuggestion cleans a next-sentence reply for display: it strips a
// leading label and a single pair of wrapping double quotes, and folds line
// breaks into spaces. Returns the cleaned text and the number of edits made.
func SanitizeSuggestion(content string) (string, int) {
	edits := 0
	s := strings.TrimSpace(content)

	if loc := suggestionLabelPattern.FindStringIndex(s); loc != nil {
		s = strings.TrimSpace(s[loc[1]:])
		edits++
	}
	for _, pair := range [][2]string{{`"`, `"`}, {"“", "”"}} {
		if len(s) > len(pair[0])+len(pair[1]) && strings.HasPrefix(s, pair[0]) && strings.HasSuffix(s, pair[1]) {
			s = strings.TrimSpace(s[len(pair[0]) : len(s)-len(pair[1])])
			edits++
			break
		}
	}
	if strings.ContainsAny(s, "\r\n") {
		s = strings.Join(strings.Fields(s), " ")
		edits++
	}
	return s, edits
}
