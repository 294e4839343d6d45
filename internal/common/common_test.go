package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"flags", "Flags"},
		{"env", "Env"},
		{"Debug", "Debug"},
		{"debug", "Debug"},
		{"RELEASE", "Release"},
		{"relWithDebInfo", "Relwithdebinfo"},
		{"", ""},
		{"x", "X"},
		{"élan", "Élan"},
		{"1st", "1st"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Capitalize(tt.input))
		})
	}
}

func TestConcat(t *testing.T) {
	got := Concat([]string{"a"}, nil, []string{"b", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, got)

	empty := Concat[[]string]()
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestUnpack2(t *testing.T) {
	a, b := Unpack2([]int{1, 2, 3})
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)

	a, b = Unpack2([]int{7})
	assert.Equal(t, 7, a)
	assert.Equal(t, 0, b)

	a, b = Unpack2([]int(nil))
	assert.Zero(t, a)
	assert.Zero(t, b)
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"x", "y"})
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = First([]string{})
	assert.False(t, ok)
	assert.True(t, IsEmpty([]string{}))
}
