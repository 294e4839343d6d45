package pipeline

import (
	"matrix-normalizer/internal/diagnostic"
	"matrix-normalizer/internal/document"
	"matrix-normalizer/internal/matrix"
)

// DefaultTags returns the stage that gives every triple a "tags" key.
func DefaultTags() Stage {
	return Stage{
		Name: "default-tags",
		Apply: func(triples []matrix.Triple, _ *diagnostic.Diagnostics) ([]matrix.Triple, error) {
			out := make([]matrix.Triple, 0, len(triples))
			for _, t := range triples {
				out = append(out, matrix.Triple{OS: t.OS, Build: t.Build, Settings: WithTags(t.Settings)})
			}

			return out, nil
		},
	}
}

// WithTags returns settings with an empty "tags" list appended when the key
// is missing. Settings that already have "tags" are returned as is.
func WithTags(settings *document.Object) *document.Object {
	if settings.Has(matrix.TagsKey) {
		return settings
	}

	out := settings.Clone()
	out.Set(matrix.TagsKey, []any{})

	return out
}
