package matrix

import "matrix-normalizer/internal/document"

// Well-known document keys.
const (
	MatrixKey    = "buildMatrix"
	OSKey        = "os"
	BuildsKey    = "builds"
	BuildNameKey = "name"
	TagsKey      = "tags"
)

// Build is one build variant of an entry.
type Build struct {
	// Value is the variant exactly as it appeared in the input: a string or
	// an *document.Object.
	Value any
	// Type is the build type name used to look up type-specific overrides.
	Type string
}

// String renders the variant as it appeared in the input: the bare name for
// a string variant, compact JSON for a structured one.
func (b Build) String() string {
	if s, ok := b.Value.(string); ok {
		return s
	}

	out, err := document.Marshal(b.Value)
	if err != nil {
		return "<invalid build: " + err.Error() + ">"
	}

	return string(out)
}

// Entry is one element of the buildMatrix list.
type Entry struct {
	OS     string
	Builds []Build
	// Settings holds every key of the entry except the operating system,
	// including "builds", in input order.
	Settings *document.Object
}

// Triple is a single normalized (os, build, settings) row.
type Triple struct {
	OS       string
	Build    Build
	Settings *document.Object
}

// Label identifies the triple in diagnostics, e.g. "linux/Debug".
func (t Triple) Label() string {
	return t.OS + "/" + t.Build.Type
}

// Row returns the triple in its serialized shape [os, build, settings].
func (t Triple) Row() []any {
	return []any{t.OS, t.Build.Value, t.Settings}
}

// Rows converts triples into their serialized shape.
func Rows(triples []Triple) []any {
	rows := make([]any, 0, len(triples))
	for _, t := range triples {
		rows = append(rows, t.Row())
	}

	return rows
}
