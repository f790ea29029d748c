// Package anchor turns free-form "quote + comment" model output into
// character ranges of the document it talks about.
//
// The pipeline is Normalize (raw text to candidates), Resolve (candidates to
// non-overlapping ranges for one persona) and Build (all personas into one
// ordered set). Offsets are rune indices, End exclusive.
package anchor
