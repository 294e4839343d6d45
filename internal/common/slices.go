package common

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Unpack2 returns the first two elements of s. Missing elements are zero values.
func Unpack2[S ~[]T, T any](s S) (first T, second T) {
	switch len(s) {
	default:
		return s[0], s[1]
	case 0:
		return
	case 1:
		first = s[0]
		return
	}
}

// Concat joins slices in argument order into a new, non-nil slice.
func Concat[S ~[]E, E any](parts ...S) S {
	total := 0
	for _, p := range parts {
		total += len(p)
	}

	out := make(S, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}
