package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"matrix-normalizer/internal/common"
	"matrix-normalizer/internal/diagnostic"
	"matrix-normalizer/internal/document"
	"matrix-normalizer/internal/match"
	"matrix-normalizer/internal/matrix"
)

// CodeStrippedKey is the diagnostic code for a key dropped by the axis
// suffix filter that is not a recognized defaults or override key.
const CodeStrippedKey = "stripped_unrecognized_key"

// CodeNotAList is the diagnostic code for an axis value that is present but
// not a list.
const CodeNotAList = "axis_not_a_list"

// notListError reports the settings key holding a non-list axis value.
type notListError struct {
	key string
}

func (e *notListError) Error() string {
	return fmt.Sprintf("field %q must be a list", e.key)
}

// NormalizeAxis returns the stage that merges the given axis on every triple.
func NormalizeAxis(axis Axis) Stage {
	return Stage{
		Name: "normalize-" + string(axis),
		Apply: func(triples []matrix.Triple, diags *diagnostic.Diagnostics) ([]matrix.Triple, error) {
			out := make([]matrix.Triple, 0, len(triples))

			for _, t := range triples {
				settings, stripped, err := NormalizeSettings(axis, t.Settings, t.Build.Type)
				if err != nil {
					var key string
					if nl := (*notListError)(nil); errors.As(err, &nl) {
						key = nl.key
					}

					diags.AddError(CodeNotAList, err.Error(), t.Label(), key)

					continue
				}

				known := []string{axis.DefaultsKey(), axis.GenericKey(), axis.BuildTypeKey(t.Build.Type)}

				for _, key := range stripped {
					diags.Add(diagnostic.Diagnostic{
						Severity:    diagnostic.DiagnosticWarning,
						Code:        CodeStrippedKey,
						Message:     fmt.Sprintf("key ends with %q and was dropped while merging %s", axis.Suffix(), axis),
						Entry:       t.Label(),
						Key:         key,
						Suggestions: match.Suggest(key, known, match.DefaultMinScore),
					})
				}

				out = append(out, matrix.Triple{OS: t.OS, Build: t.Build, Settings: settings})
			}

			if diags.HasErrors() {
				return nil, &matrix.ConfigError{Kind: matrix.KindSchema, Err: diags.Error()}
			}

			return out, nil
		},
	}
}

// NormalizeSettings merges the axis lists of settings for a build of the
// given type. The result starts with the merged "<axis>" key followed by
// every original key not ending in the axis suffix, in original order. An
// original key literally named "<axis>" replaces the merged value.
//
// The second result lists the dropped keys that are neither the defaults key
// nor an override key.
func NormalizeSettings(axis Axis, settings *document.Object, buildType string) (*document.Object, []string, error) {
	parts := make([][]any, 0, 3)

	for _, key := range []string{axis.DefaultsKey(), axis.GenericKey(), axis.BuildTypeKey(buildType)} {
		list, err := listAt(settings, key)
		if err != nil {
			return nil, nil, err
		}

		parts = append(parts, list)
	}

	suffix := axis.Suffix()

	var stripped []string

	normalized := document.NewObject()
	normalized.Set(string(axis), common.Concat(parts...))

	for _, key := range settings.Keys() {
		if strings.HasSuffix(key, suffix) {
			if !axis.recognizes(key) {
				stripped = append(stripped, key)
			}

			continue
		}

		v, _ := settings.Get(key)
		normalized.Set(key, v)
	}

	return normalized, stripped, nil
}

// listAt returns the list stored under key, or nil when key is absent.
func listAt(settings *document.Object, key string) ([]any, error) {
	raw, ok := settings.Get(key)
	if !ok {
		return nil, nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, &notListError{key: key}
	}

	return list, nil
}
