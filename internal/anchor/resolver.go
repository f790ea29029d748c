package anchor

import (
	"strings"
	"unicode/utf8"

	"critic.app/backend/internal/model"
)

// quotePairs maps an opening quote mark to the closing mark that must wrap
// the whole quote for both to be stripped.
var quotePairs = map[rune]rune{
	'"':  '"',
	'\'': '\'',
	'`':  '`',
	'“':  '”',
	'‘':  '’',
}

// TrimQuote strips surrounding whitespace and matched quote marks.
func TrimQuote(s string) string {
	s = strings.TrimSpace(s)
	for {
		first, firstSize := utf8.DecodeRuneInString(s)
		closing, ok := quotePairs[first]
		if !ok {
			return s
		}
		last, lastSize := utf8.DecodeLastRuneInString(s)
		if last != closing || len(s) < firstSize+lastSize {
			return s
		}
		s = strings.TrimSpace(s[firstSize : len(s)-lastSize])
	}
}

// Resolve anchors one persona's candidates in document.
//
// Candidates are searched in the order given with a cursor that only moves
// forward: each quote is matched exactly (case-sensitive) at its first
// occurrence at or after the end of the previous match. Quotes that are empty
// after trimming, or do not occur after the cursor, are dropped. The result
// is therefore non-overlapping and sorted by Start.
//
// A quote that the model repeats out of order, and that only occurs before
// the cursor, is dropped rather than searched from the top.
func Resolve(persona model.PersonaID, document string, candidates []model.CandidateAnnotation) []model.ResolvedAnnotation {
	resolved := make([]model.ResolvedAnnotation, 0, len(candidates))

	byteCursor, runeCursor := 0, 0
	for _, c := range candidates {
		quote := TrimQuote(c.QuotedText)
		if quote == "" {
			continue
		}

		idx := strings.Index(document[byteCursor:], quote)
		if idx < 0 {
			continue
		}

		startByte := byteCursor + idx
		start := runeCursor + utf8.RuneCountInString(document[byteCursor:startByte])
		end := start + utf8.RuneCountInString(quote)

		resolved = append(resolved, model.ResolvedAnnotation{
			PersonaID:  persona,
			QuotedText: quote,
			Comment:    c.Comment,
			Start:      start,
			End:        end,
		})

		byteCursor = startByte + len(quote)
		runeCursor = end
	}

	return resolved
}
