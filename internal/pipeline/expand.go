package pipeline

import "matrix-normalizer/internal/matrix"

// Expand produces one triple per build of every entry, keeping entry order
// and build order. Each triple gets its own copy of the entry settings
// without the "builds" key.
func Expand(entries []matrix.Entry) []matrix.Triple {
	total := 0
	for _, e := range entries {
		total += len(e.Builds)
	}

	triples := make([]matrix.Triple, 0, total)

	for _, e := range entries {
		base := e.Settings.Without(matrix.BuildsKey)

		for _, b := range e.Builds {
			triples = append(triples, matrix.Triple{
				OS:       e.OS,
				Build:    b,
				Settings: base.Clone(),
			})
		}
	}

	return triples
}
