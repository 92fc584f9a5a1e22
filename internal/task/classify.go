package task

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/thruflo/taskgen/internal/decl"
)

// argsPrefix marks the declaration that describes a task's invocation shape.
const argsPrefix = "data Args"

// Outcome reports what classification decided about a candidate file.
// Rejections are ordinary values, not errors, so the skip path stays visible
// and testable.
type Outcome int

const (
	// Accepted means the candidate became a Task.
	Accepted Outcome = iota
	// SkippedSuffix means the final path segment has no task-file suffix.
	SkippedSuffix
	// SkippedName means a path segment is not a valid module-name token.
	SkippedName
)

// String returns a short reason label for logging.
func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case SkippedSuffix:
		return "no task suffix"
	case SkippedName:
		return "invalid module name"
	default:
		return "unknown"
	}
}

// Classify inspects the candidate at rel (a slash-separated path relative to
// root). Candidates that do not look like task files are skipped, never
// failed; the returned error is non-nil only for I/O failures, which abort
// the whole run.
func Classify(root, rel string, rules Rules) (Task, Outcome, error) {
	segments := strings.Split(rel, "/")
	base, ok := stripSuffix(segments[len(segments)-1], rules.Suffixes)
	if !ok {
		return Task{}, SkippedSuffix, nil
	}
	segments[len(segments)-1] = base

	for _, segment := range segments {
		if !validToken(segment) {
			return Task{}, SkippedName, nil
		}
	}

	text, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return Task{}, Accepted, fmt.Errorf("failed to read task file %s: %w", rel, err)
	}

	return Task{
		ModuleQualifier: strings.Join(segments, "."),
		Name:            Casify(base),
		Args:            shapeOf(decl.Extract(string(text))),
	}, Accepted, nil
}

// stripSuffix removes the first matching task-file suffix from the final
// path segment, returning the base identifier.
func stripSuffix(name string, suffixes []string) (string, bool) {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix), true
		}
	}
	return "", false
}

// validToken reports whether a path segment is a valid module-name token:
// non-empty, uppercase first letter, then alphanumerics, underscores, or
// primes.
func validToken(segment string) bool {
	if segment == "" {
		return false
	}
	first, size := utf8.DecodeRuneInString(segment)
	if !unicode.IsUpper(first) {
		return false
	}
	for _, r := range segment[size:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '\'' {
			return false
		}
	}
	return true
}

// shapeOf derives the argument shape from the first Args declaration, if
// any: a braced declaration is a record, an unbraced one is positional.
func shapeOf(decls []string) ArgsShape {
	for _, d := range decls {
		if !strings.HasPrefix(d, argsPrefix) {
			continue
		}
		if strings.Contains(d, "{") {
			return ArgsShape{Kind: Record, RawText: d}
		}
		return ArgsShape{Kind: Positional, RawText: d}
	}
	return ArgsShape{Kind: NoArgs}
}
