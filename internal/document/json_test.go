package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONPreservesOrder(t *testing.T) {
	v, err := DecodeJSON([]byte(`{"z": 1, "a": {"y": true, "b": null}, "list": ["x", 2.5]}`))
	require.NoError(t, err)

	obj, ok := v.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "list"}, obj.Keys())

	z, _ := obj.Get("z")
	assert.Equal(t, json.Number("1"), z)

	inner, _ := obj.Get("a")
	innerObj, ok := inner.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"y", "b"}, innerObj.Keys())

	b, ok := innerObj.Get("b")
	assert.True(t, ok)
	assert.Nil(t, b)

	list, _ := obj.Get("list")
	assert.Equal(t, []any{"x", json.Number("2.5")}, list)
}

func TestDecodeJSONEmptyContainers(t *testing.T) {
	v, err := DecodeJSON([]byte(`{"a": [], "b": {}}`))
	require.NoError(t, err)

	obj := v.(*Object)
	a, _ := obj.Get("a")
	assert.Equal(t, []any{}, a)

	b, _ := obj.Get("b")
	assert.Equal(t, 0, b.(*Object).Len())
}

func TestDecodeJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ``},
		{"truncated", `{"a": [1, 2`},
		{"missing colon", `{"a" 1}`},
		{"trailing value", `{} {}`},
		{"trailing garbage", `[1] x`},
		{"bare word", `hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestEncodeJSONRoundTripKeepsOrder(t *testing.T) {
	input := `{"flags": ["-O0", "-g"], "env": [], "cc": "<clang>", "n": 3}`

	v, err := DecodeJSON([]byte(input))
	require.NoError(t, err)

	out, err := EncodeJSON(v)
	require.NoError(t, err)

	expected := `{
  "flags": [
    "-O0",
    "-g"
  ],
  "env": [],
  "cc": "<clang>",
  "n": 3
}
`
	assert.Equal(t, expected, string(out))
}
