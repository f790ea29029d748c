package anchor

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"

	"critic.app/backend/internal/model"
)

const fence = "```"

// WireComment is the record shape requested from the model. Position is
// advisory and never used for anchoring.
type WireComment struct {
	SelectedText string        `json:"selectedText" jsonschema:"required,description=Exact text copied from the original (5-15 words)"`
	Comment      string        `json:"comment" jsonschema:"required,description=Brief comment about that selection (1-2 sentences)"`
	Position     *WirePosition `json:"position,omitempty" jsonschema:"description=Character positions of selectedText in the original"`
}

type WirePosition struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Normalized is the outcome of parsing one model reply. When Malformed is
// set, Candidates holds exactly one fallback candidate anchored at the start
// of the document.
type Normalized struct {
	Candidates []model.CandidateAnnotation
	Malformed  bool
}

// Normalize parses a raw model reply into candidate annotations.
//
// A fenced-code wrapper is stripped first, then the body must be a JSON array
// of objects or a single object. Anything else becomes a single fallback
// candidate built from document and the reply text.
func Normalize(raw, document string) Normalized {
	body := StripFence(raw)

	candidates, ok := parseCandidates(body)
	if !ok {
		return Normalized{
			Candidates: []model.CandidateAnnotation{ParseFallback(document, body)},
			Malformed:  true,
		}
	}
	return Normalized{Candidates: candidates}
}

// StripFence removes a leading ``` opener (with optional language tag) and a
// trailing ``` closer.
func StripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, fence) {
		s = stripOpener(strings.TrimPrefix(s, fence))
	}
	if strings.HasSuffix(s, fence) {
		s = strings.TrimSuffix(s, fence)
		s = strings.TrimSpace(s)
	}
	return s
}

// stripOpener drops the rest of the opener line when it holds nothing but a
// language tag. A single-line reply keeps its body after the tag.
func stripOpener(s string) string {
	if line, rest, ok := strings.Cut(s, "\n"); ok && isLanguageTag(line) {
		return strings.TrimSpace(rest)
	}
	s = strings.TrimLeft(s, " \t")
	s = strings.TrimLeftFunc(s, isLanguageTagRune)
	return strings.TrimSpace(s)
}

func isLanguageTag(line string) bool {
	return strings.IndexFunc(strings.TrimSpace(line), func(r rune) bool { return !isLanguageTagRune(r) }) < 0
}

func isLanguageTagRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '+'
}

func parseCandidates(body string) ([]model.CandidateAnnotation, bool) {
	data := []byte(body)
	if !json.Valid(data) {
		return nil, false
	}

	var records []json.RawMessage
	switch firstByte(data) {
	case '[':
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, false
		}
	case '{':
		records = []json.RawMessage{data}
	default:
		return nil, false
	}

	if len(records) == 0 {
		return []model.CandidateAnnotation{}, true
	}

	candidates := make([]model.CandidateAnnotation, 0, len(records))
	for _, rec := range records {
		if c, ok := decodeRecord(rec); ok {
			candidates = append(candidates, c)
		}
	}
	// A non-empty collection with no usable record is not the shape we asked for.
	if len(candidates) == 0 {
		return nil, false
	}
	return candidates, true
}

// decodeRecord accepts an object carrying at least one of the quote or
// comment fields as a string. Unknown fields, including position, are ignored.
func decodeRecord(raw json.RawMessage) (model.CandidateAnnotation, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return model.CandidateAnnotation{}, false
	}

	quote, hasQuote := stringField(fields, "selectedText", "quotedText")
	comment, hasComment := stringField(fields, "comment")
	if !hasQuote && !hasComment {
		return model.CandidateAnnotation{}, false
	}

	return model.CandidateAnnotation{
		QuotedText: quote,
		Comment:    strings.TrimSpace(comment),
	}, true
}

func stringField(fields map[string]json.RawMessage, keys ...string) (string, bool) {
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s, true
		}
	}
	return "", false
}

func firstByte(data []byte) byte {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
