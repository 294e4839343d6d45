package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKeepsInsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("zeta", 1)
	obj.Set("alpha", 2)
	obj.Set("mid", 3)
	obj.Set("alpha", 4)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())
	assert.Equal(t, 3, obj.Len())

	v, ok := obj.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestObjectWithoutDoesNotMutate(t *testing.T) {
	obj := NewObject()
	obj.Set("os", "linux")
	obj.Set("builds", []any{"Debug"})
	obj.Set("tags", []any{})

	out := obj.Without("builds", "os")

	assert.Equal(t, []string{"tags"}, out.Keys())
	assert.Equal(t, []string{"os", "builds", "tags"}, obj.Keys())

	out.Set("extra", true)
	assert.False(t, obj.Has("extra"))
}

func TestObjectFilterAndClone(t *testing.T) {
	obj := NewObject()
	obj.Set("a", 1)
	obj.Set("b", 2)

	clone := obj.Clone()
	clone.Set("c", 3)

	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	assert.Equal(t, []string{"a", "b", "c"}, clone.Keys())

	onlyB := obj.Filter(func(k string) bool { return k == "b" })
	assert.Equal(t, []string{"b"}, onlyB.Keys())
}

func TestNilObject(t *testing.T) {
	var obj *Object

	assert.Equal(t, 0, obj.Len())
	assert.Nil(t, obj.Keys())
	assert.False(t, obj.Has("x"))
	assert.Equal(t, 0, obj.Clone().Len())
}

func TestObjectString(t *testing.T) {
	obj := NewObject()
	obj.Set("flags", []any{"-O2", "a&b"})
	obj.Set("env", []any{})

	assert.Equal(t, `{"flags":["-O2","a&b"],"env":[]}`, obj.String())
}
