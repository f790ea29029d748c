package anchor

import (
	"fmt"
	"sort"

	"critic.app/backend/internal/model"
	"critic.app/backend/internal/persona"
)

// Build merges per-persona resolved lists into one AnnotationSet ordered by
// Start, then persona registration order, then End. Overlap across personas
// is kept. Each annotation gets an ID derived from its persona and range,
// which is unique within a persona's pass and identical across re-runs.
func Build(lists ...[]model.ResolvedAnnotation) model.AnnotationSet {
	total := 0
	for _, l := range lists {
		total += len(l)
	}

	set := make(model.AnnotationSet, 0, total)
	seen := make(map[string]struct{}, total)
	for _, l := range lists {
		for _, a := range l {
			a.ID = AnnotationID(a)
			if _, dup := seen[a.ID]; dup {
				continue
			}
			seen[a.ID] = struct{}{}
			set = append(set, a)
		}
	}

	sort.SliceStable(set, func(i, j int) bool {
		a, b := set[i], set[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if ra, rb := persona.Rank(a.PersonaID), persona.Rank(b.PersonaID); ra != rb {
			return ra < rb
		}
		if a.PersonaID != b.PersonaID {
			return a.PersonaID < b.PersonaID
		}
		return a.End < b.End
	})

	return set
}

func AnnotationID(a model.ResolvedAnnotation) string {
	return fmt.Sprintf("%s:%d-%d", a.PersonaID, a.Start, a.End)
}
