package document

import "slices"

// Object is a string-keyed map that remembers insertion order.
// The zero value is not usable; create objects with NewObject.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{values: map[string]any{}}
}

// Len returns the number of keys. A nil Object has length 0.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.keys)
}

// Keys returns a copy of the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	return slices.Clone(o.keys)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}

	v, ok := o.values[key]

	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position and has its value replaced.
func (o *Object) Set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}

	o.values[key] = value
}

// Clone returns a shallow copy of o.
func (o *Object) Clone() *Object {
	return o.Filter(func(string) bool { return true })
}

// Filter returns a new Object holding the keys for which keep returns true,
// in their original order.
func (o *Object) Filter(keep func(key string) bool) *Object {
	out := NewObject()
	if o == nil {
		return out
	}

	for _, k := range o.keys {
		if keep(k) {
			out.Set(k, o.values[k])
		}
	}

	return out
}

// Without returns a new Object with the given keys removed.
func (o *Object) Without(keys ...string) *Object {
	return o.Filter(func(k string) bool {
		return !slices.Contains(keys, k)
	})
}

// String renders o as compact JSON.
func (o *Object) String() string {
	b, err := Marshal(o)
	if err != nil {
		return "<invalid object: " + err.Error() + ">"
	}

	return string(b)
}
