// Package task turns candidate files into task records.
//
// A task file is a self-contained module exposing a single entry point plus
// an optional Args declaration describing its invocation shape. This package
// only ever reads task-file text; it never executes anything it discovers.
package task

// ShapeKind enumerates the recognized argument shapes.
type ShapeKind int

const (
	// NoArgs means the task file declares no Args type.
	NoArgs ShapeKind = iota
	// Positional means an Args declaration without a record body.
	Positional
	// Record means an Args declaration with named fields.
	Record
)

// ArgsShape describes how a task expects its arguments. RawText holds the
// whitespace-collapsed Args declaration for Positional and Record shapes, so
// the generator can re-extract a field list; it is empty for NoArgs.
type ArgsShape struct {
	Kind    ShapeKind
	RawText string
}

// Task is one discovered task file. Created once during classification and
// immutable thereafter.
type Task struct {
	// ModuleQualifier is the dot-joined path of directory segments plus the
	// stripped base identifier, e.g. "Deploy.Rollback" for
	// Deploy/RollbackTask.hs.
	ModuleQualifier string

	// Name is the casified base identifier, e.g. "Dry_Run" for DryRunTask.hs.
	Name string

	Args ArgsShape
}

// Rules carries the classification conventions. Use DefaultRules unless a
// project config overrides them.
type Rules struct {
	// Suffixes are matched against the end of the final path segment; the
	// first one that matches is stripped to obtain the base identifier.
	Suffixes []string
}

// Default task-file suffixes: the primary form and the legacy literate form.
const (
	DefaultSuffix       = "Task.hs"
	DefaultLegacySuffix = "Task.lhs"
)

// DefaultRules returns the stock classification rules.
func DefaultRules() Rules {
	return Rules{Suffixes: []string{DefaultSuffix, DefaultLegacySuffix}}
}
