package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"matrix-normalizer/internal/document"
	"matrix-normalizer/internal/matrix"
)

func parseEntries(t *testing.T, input string) []matrix.Entry {
	t.Helper()

	entries, err := matrix.Parse([]byte(input), matrix.FormatJSON, "test.json")
	require.NoError(t, err)

	return entries
}

func parseObject(t *testing.T, input string) *document.Object {
	t.Helper()

	v, err := document.DecodeJSON([]byte(input))
	require.NoError(t, err)

	obj, ok := v.(*document.Object)
	require.True(t, ok)

	return obj
}

func rowsJSON(t *testing.T, triples []matrix.Triple) string {
	t.Helper()

	b, err := document.Marshal(matrix.Rows(triples))
	require.NoError(t, err)

	return string(b)
}
