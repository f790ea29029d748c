package model

// CandidateAnnotation is an untrusted quote+comment pair parsed from model
// output. QuotedText may be empty, decorated with quotes, or absent from the
// document.
type CandidateAnnotation struct {
	QuotedText string
	Comment    string
}

// ResolvedAnnotation is anchored to the document: Start and End are 0-based
// character (rune) offsets, End exclusive, and the runes of the document in
// [Start, End) spell QuotedText exactly.
type ResolvedAnnotation struct {
	ID         string
	PersonaID  PersonaID
	QuotedText string
	Comment    string
	Start      int
	End        int
	Fallback   bool
}

// AnnotationSet is ordered by Start, ties broken by persona registration order.
type AnnotationSet []ResolvedAnnotation
