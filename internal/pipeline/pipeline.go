package pipeline

import (
	"fmt"

	"matrix-normalizer/internal/diagnostic"
	"matrix-normalizer/internal/matrix"
)

// Stage is one step applied to the full list of triples.
type Stage struct {
	Name  string
	Apply func(triples []matrix.Triple, diags *diagnostic.Diagnostics) ([]matrix.Triple, error)
}

// Result is the outcome of a pipeline run.
type Result struct {
	Triples     []matrix.Triple
	Diagnostics diagnostic.Diagnostics
}

// Default returns the stages that follow expansion, in order.
func Default() []Stage {
	return []Stage{
		NormalizeAxis(AxisFlags),
		NormalizeAxis(AxisEnv),
		DefaultTags(),
	}
}

// Run expands entries and applies the default stages.
func Run(entries []matrix.Entry) (*Result, error) {
	return RunStages(entries, Default()...)
}

// RunStages expands entries and applies stages in the given order.
func RunStages(entries []matrix.Entry, stages ...Stage) (*Result, error) {
	res := &Result{Triples: Expand(entries)}

	for _, stage := range stages {
		triples, err := stage.Apply(res.Triples, &res.Diagnostics)
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", stage.Name, err)
		}

		res.Triples = triples
	}

	return res, nil
}
