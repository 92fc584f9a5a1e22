// Package decl reconstructs top-level declarations from task-file text.
//
// The extractor is a shallow layout parser, not a grammar: a line that opens
// in column zero starts a declaration, and indented or closing-brace lines
// continue the previous one. It does not track brace nesting, comments, or
// string literals. That is adequate only because the files it reads follow a
// convention controlled by the same toolchain, and it can misfire on layouts
// that break the convention.
package decl

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Extract splits text into whitespace-normalized top-level declarations,
// preserving their original top-to-bottom order.
//
// A line whose first character is whitespace or '}' continues the open
// declaration; empty lines continue it too. Any other line closes the open
// declaration and starts a new one. Each declaration's lines are then joined
// with no separator and runs of whitespace collapse to single spaces.
func Extract(text string) []string {
	if text == "" {
		return nil
	}

	var groups [][]string
	for _, line := range strings.Split(text, "\n") {
		if continues(line) && len(groups) > 0 {
			groups[len(groups)-1] = append(groups[len(groups)-1], line)
			continue
		}
		groups = append(groups, []string{line})
	}

	decls := make([]string, len(groups))
	for i, lines := range groups {
		decls[i] = normalize(strings.Join(lines, ""))
	}
	return decls
}

// continues reports whether a line belongs to the open declaration.
func continues(line string) bool {
	if line == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.IsSpace(r) || r == '}'
}

// normalize collapses every whitespace run to a single space and trims the
// ends.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
