package common

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first rune of s and lower-cases the remainder,
// so "relWithDebInfo" becomes "Relwithdebinfo".
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	// A Caser is stateful, so one is built per call.
	return string(unicode.ToTitle(r)) + cases.Lower(language.Und).String(s[size:])
}
