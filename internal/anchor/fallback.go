package anchor

import (
	"strings"
	"unicode/utf8"

	"critic.app/backend/internal/model"
)

const (
	parseFallbackSpan     = 50
	transportFallbackSpan = 30

	excerptMinLen = 10
	excerptMaxLen = 100
)

const (
	TransportApology = "I'm having trouble providing feedback right now. Please try again."
	ParseApology     = "I apologize, but I'm having trouble providing specific feedback right now. Please try again."
)

// TransportFallback is the candidate used when the generation call itself failed.
func TransportFallback(document string) model.CandidateAnnotation {
	return model.CandidateAnnotation{
		QuotedText: Prefix(document, transportFallbackSpan),
		Comment:    TransportApology,
	}
}

// ParseFallback is the candidate used when a reply could not be parsed. A
// short plain-text reply is passed through as the comment; anything that
// looks structural is replaced by a generic apology.
func ParseFallback(document, reply string) model.CandidateAnnotation {
	return model.CandidateAnnotation{
		QuotedText: Prefix(document, parseFallbackSpan),
		Comment:    fallbackComment(reply),
	}
}

func fallbackComment(reply string) string {
	reply = strings.TrimSpace(reply)
	if strings.ContainsAny(reply, "{[") || utf8.RuneCountInString(reply) <= excerptMinLen {
		return ParseApology
	}
	if utf8.RuneCountInString(reply) > excerptMaxLen {
		return string([]rune(reply)[:excerptMaxLen]) + "..."
	}
	return reply
}

// AnchorFallback pins a fallback candidate at offset 0. Fallback quotes are
// always document prefixes, so no search is needed.
func AnchorFallback(persona model.PersonaID, c model.CandidateAnnotation) model.ResolvedAnnotation {
	return model.ResolvedAnnotation{
		PersonaID:  persona,
		QuotedText: c.QuotedText,
		Comment:    c.Comment,
		Start:      0,
		End:        utf8.RuneCountInString(c.QuotedText),
		Fallback:   true,
	}
}

// Prefix returns the first n characters of s, or all of s if it is shorter.
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
