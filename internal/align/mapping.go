package align

import "math"

// WordMapping declares that the source token at Source corresponds to the
// target token at Target. A mapping set is not necessarily a bijection:
// several source indices may share one target index and vice versa.
type WordMapping struct {
	Source int `json:"source"`
	Target int `json:"target"`
}

// Direction selects which side of the mapping table is the lookup key.
type Direction int

const (
	// SourceToTarget looks up a target index by source index.
	SourceToTarget Direction = iota
	// TargetToSource looks up a source index by target index.
	TargetToSource
)

// BuildMapping synthesizes a fallback alignment between a source sequence
// of sourceLen tokens and a target sequence of targetLen tokens. It is
// used when no explicit word-by-word alignment accompanies the text.
//
//   - Either length zero: empty mapping, highlighting is impossible.
//   - Equal lengths: identity pairs (i, i), treating the target as a
//     literal per-word gloss.
//   - Unequal lengths: one pair per source index with
//     target = round(i * (targetLen-1) / (sourceLen-1)), rounding half
//     away from zero. The first source token always maps to the first
//     target token and the last to the last.
//   - Single source token against a longer target: the lone token maps to
//     the centered target index round((targetLen-1)/2), anchoring the
//     phrase it glosses in the middle.
func BuildMapping(sourceLen, targetLen int) []WordMapping {
	if sourceLen <= 0 || targetLen <= 0 {
		return nil
	}

	mappings := make([]WordMapping, sourceLen)

	if sourceLen == targetLen {
		for i := range mappings {
			mappings[i] = WordMapping{Source: i, Target: i}
		}
		return mappings
	}

	if sourceLen == 1 {
		mappings[0] = WordMapping{Source: 0, Target: roundHalfAway(float64(targetLen-1) / 2)}
		return mappings
	}

	scale := float64(targetLen-1) / float64(sourceLen-1)
	for i := range mappings {
		mappings[i] = WordMapping{Source: i, Target: roundHalfAway(float64(i) * scale)}
	}
	return mappings
}

// roundHalfAway rounds to the nearest integer, ties away from zero.
// math.Round's native rule; documented here because the choice is
// observable in the synthesized alignment.
func roundHalfAway(v float64) int {
	return int(math.Round(v))
}

// SanitizeMappings bounds-checks a caller-supplied mapping table against
// the two sequence lengths, dropping entries that reference an index
// outside [0, len). The table is trusted otherwise; dropping is silent
// because the worst outcome of a missing entry is an unhighlighted word.
func SanitizeMappings(mappings []WordMapping, sourceLen, targetLen int) []WordMapping {
	if len(mappings) == 0 {
		return nil
	}
	kept := make([]WordMapping, 0, len(mappings))
	for _, m := range mappings {
		if m.Source < 0 || m.Source >= sourceLen {
			continue
		}
		if m.Target < 0 || m.Target >= targetLen {
			continue
		}
		kept = append(kept, m)
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// MapCounterpart returns the counterpart index for index in the given
// direction. The first matching entry wins in both directions; the
// reverse direction is a linear scan over the same table, which is fine
// at verse-sized mapping counts. The second return is false when no
// entry matches, an expected outcome for sparse tables.
func MapCounterpart(dir Direction, index int, mappings []WordMapping) (int, bool) {
	for _, m := range mappings {
		switch dir {
		case SourceToTarget:
			if m.Source == index {
				return m.Target, true
			}
		case TargetToSource:
			if m.Target == index {
				return m.Source, true
			}
		}
	}
	return 0, false
}
