package task

import (
	"strings"
	"unicode"
)

// Casify splits a Pascal-case identifier into underscore-joined segments:
// "FooBarTask" becomes "Foo_Bar_Task".
//
// A segment opens at the next unconsumed character and, when that character
// is uppercase, absorbs the run of lowercase characters that follows it.
// The absorption test always looks at the segment's first character, so a
// run of consecutive uppercase letters yields one single-letter segment per
// letter: "ABCFoo" becomes "A_B_C_Foo".
func Casify(identifier string) string {
	runes := []rune(identifier)
	var segments []string
	for i := 0; i < len(runes); {
		j := i + 1
		if unicode.IsUpper(runes[i]) {
			for j < len(runes) && unicode.IsLower(runes[j]) {
				j++
			}
		}
		segments = append(segments, string(runes[i:j]))
		i = j
	}
	return strings.Join(segments, "_")
}
