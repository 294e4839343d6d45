package match

import (
	"cmp"
	"slices"
	"strings"
)

// DefaultMinScore is the similarity a candidate needs to be suggested.
const DefaultMinScore = 0.75

// Suggest returns the candidates similar to key, best first. Comparison is
// case-insensitive; ties keep candidate order. A candidate equal to key is
// never suggested.
func Suggest(key string, candidates []string, minScore float64) []string {
	type scored struct {
		name  string
		score float64
	}

	lowerKey := strings.ToLower(key)

	var hits []scored

	for _, c := range candidates {
		if c == key {
			continue
		}

		if s := LevenshteinNormalized(lowerKey, strings.ToLower(c)); s >= minScore {
			hits = append(hits, scored{name: c, score: s})
		}
	}

	slices.SortStableFunc(hits, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.name)
	}

	return out
}
