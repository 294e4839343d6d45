package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMatrix = `{"buildMatrix": [
  {
    "os": "linux",
    "builds": ["Debug", "Release"],
    "buildFlags": ["-Wall"],
    "extraBuildFlags": ["-fPIC"],
    "extraDebugBuildFlags": ["-g"],
    "extraReleaseBuildFlags": ["-O2"],
    "buildEnv": ["CC=gcc"],
    "extraDebugBuildEnv": ["ASAN=1"],
    "image": "ubuntu:24.04"
  },
  {"os": "macos", "builds": ["Release"], "tags": ["arm64"]},
  ["windows", {"builds": ["Debug", "Release", "MinSizeRel"], "extraBuildEnv": ["VS=2022"]}]
]}`

func TestRunCardinality(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty matrix", `{"buildMatrix": []}`, 0},
		{"empty builds", `{"buildMatrix": [{"os": "linux", "builds": []}]}`, 0},
		{"sample", sampleMatrix, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := parseEntries(t, tt.input)

			sum := 0
			for _, e := range entries {
				sum += len(e.Builds)
			}

			res, err := Run(entries)
			require.NoError(t, err)
			assert.Len(t, res.Triples, tt.expected)
			assert.Len(t, res.Triples, sum)
		})
	}
}

func TestRunAxisIndependence(t *testing.T) {
	entries := parseEntries(t, sampleMatrix)

	flagsFirst, err := RunStages(entries, NormalizeAxis(AxisFlags), NormalizeAxis(AxisEnv), DefaultTags())
	require.NoError(t, err)

	envFirst, err := RunStages(entries, NormalizeAxis(AxisEnv), NormalizeAxis(AxisFlags), DefaultTags())
	require.NoError(t, err)

	require.Len(t, envFirst.Triples, len(flagsFirst.Triples))

	for i := range flagsFirst.Triples {
		a, b := flagsFirst.Triples[i].Settings, envFirst.Triples[i].Settings

		assert.ElementsMatch(t, a.Keys(), b.Keys())

		for _, key := range a.Keys() {
			va, _ := a.Get(key)
			vb, _ := b.Get(key)
			assert.Equal(t, va, vb, "triple %d key %s", i, key)
		}
	}
}

func TestRunSample(t *testing.T) {
	res, err := Run(parseEntries(t, sampleMatrix))
	require.NoError(t, err)
	assert.Empty(t, res.Diagnostics.Warnings)

	expected := `[` +
		`["linux","Debug",{"env":["CC=gcc","ASAN=1"],"flags":["-Wall","-fPIC","-g"],"image":"ubuntu:24.04","tags":[]}],` +
		`["linux","Release",{"env":["CC=gcc"],"flags":["-Wall","-fPIC","-O2"],"image":"ubuntu:24.04","tags":[]}],` +
		`["macos","Release",{"env":[],"flags":[],"tags":["arm64"]}],` +
		`["windows","Debug",{"env":["VS=2022"],"flags":[],"tags":[]}],` +
		`["windows","Release",{"env":["VS=2022"],"flags":[],"tags":[]}],` +
		`["windows","MinSizeRel",{"env":["VS=2022"],"flags":[],"tags":[]}]` +
		`]`

	assert.Equal(t, expected, rowsJSON(t, res.Triples))
}

func TestRunEndToEndExample(t *testing.T) {
	entries := parseEntries(t, `{"buildMatrix":[{"os":"linux","builds":["Debug"],"buildFlags":["-O0"],"extraDebugBuildFlags":["-g"]}]}`)

	res, err := Run(entries)
	require.NoError(t, err)
	require.Len(t, res.Triples, 1)

	tr := res.Triples[0]
	assert.Equal(t, "linux", tr.OS)
	assert.Equal(t, "Debug", tr.Build.Value)
	assert.ElementsMatch(t, []string{"flags", "env", "tags"}, tr.Settings.Keys())

	flags, _ := tr.Settings.Get("flags")
	env, _ := tr.Settings.Get("env")
	tags, _ := tr.Settings.Get("tags")
	assert.Equal(t, []any{"-O0", "-g"}, flags)
	assert.Equal(t, []any{}, env)
	assert.Equal(t, []any{}, tags)
}

func TestRunStructuredBuildOverridesAreNotMerged(t *testing.T) {
	entries := parseEntries(t, `{"buildMatrix": [{"os": "linux", "builds": [{"name": "Debug", "extraBuildFlags": ["-x"]}], "buildFlags": ["-a"]}]}`)

	res, err := Run(entries)
	require.NoError(t, err)

	assert.Equal(t,
		`[["linux",{"name":"Debug","extraBuildFlags":["-x"]},{"env":[],"flags":["-a"],"tags":[]}]]`,
		rowsJSON(t, res.Triples))
}

func TestRunDoesNotMutateEntries(t *testing.T) {
	entries := parseEntries(t, sampleMatrix)
	before := entries[0].Settings.String()

	_, err := Run(entries)
	require.NoError(t, err)

	assert.Equal(t, before, entries[0].Settings.String())
}
