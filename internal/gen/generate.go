// Package gen assembles the generated dispatcher module and writes it out.
//
// The output is a single source file containing a fixed header, one import
// per task, a closed command sum type, and a dispatcher routing each parsed
// command into its task module's entry point. Output is a pure function of
// the task list: same tasks, same order, byte-identical text.
package gen

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/thruflo/taskgen/internal/task"
)

// Generate assembles the full module text for the discovered tasks, in the
// order the scanner produced them. A run with zero tasks still yields a
// valid module: the fixed header with blank sum-type and dispatcher
// sections.
func Generate(sourcePath string, tasks []task.Task, style Style) string {
	sections := []string{header(sourcePath, style)}
	if block := importBlock(tasks, style); block != "" {
		sections = append(sections, block)
	}
	if sum := commandSum(tasks, style); sum != "" {
		sections = append(sections, sum)
	}
	if d := dispatcher(tasks, style); d != "" {
		sections = append(sections, d)
	}
	return strings.Join(sections, "\n\n") + "\n"
}

// header renders the fixed preamble: a LINE pragma pointing diagnostics at
// the original source, warning suppression, language extensions, the
// module's own identity, and the support-library import.
func header(sourcePath string, style Style) string {
	var b strings.Builder
	fmt.Fprintf(&b, "{-# LINE 1 %q #-}\n", sourcePath)
	b.WriteString("{-# OPTIONS_GHC -fno-warn-deprecations #-}\n")
	for _, ext := range style.Extensions {
		fmt.Fprintf(&b, "{-# LANGUAGE %s #-}\n", ext)
	}
	fmt.Fprintf(&b, "module %s where\n\n", moduleIdent(sourcePath))
	fmt.Fprintf(&b, "import %s", style.SupportImport)
	return b.String()
}

// moduleIdent derives the generated module's own name from the source path:
// final segment, cut at the first '.', first letter upper-cased.
func moduleIdent(sourcePath string) string {
	base := path.Base(filepath.ToSlash(sourcePath))
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	runes := []rune(base)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}

// importBlock renders one qualified import per task.
func importBlock(tasks []task.Task, style Style) string {
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = "import qualified " + t.ModuleQualifier + style.ModuleSuffix
	}
	return strings.Join(lines, "\n")
}

// commandSum renders the single-line sum type enumerating every variant.
func commandSum(tasks []task.Task, style Style) string {
	if len(tasks) == 0 {
		return ""
	}
	variants := make([]string, len(tasks))
	for i, t := range tasks {
		variants[i] = variantName(t)
	}
	return fmt.Sprintf("data %s = %s deriving (%s)",
		style.CommandType,
		strings.Join(variants, " | "),
		strings.Join(style.Deriving, ", "))
}

// dispatcher renders the case expression routing each command variant into
// its task module's entry point.
func dispatcher(tasks []task.Task, style Style) string {
	if len(tasks) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "dispatch :: %s -> IO ()\n", style.CommandType)
	b.WriteString("dispatch cmd = case cmd of")
	for _, t := range tasks {
		b.WriteString("\n")
		b.WriteString(clause(t, style))
	}
	return b.String()
}

// clause renders one dispatcher case. Argument-bearing variants bind their
// fields by name and rebuild the task module's Args record; NoArgs variants
// call the entry point bare.
func clause(t task.Task, style Style) string {
	module := t.ModuleQualifier + style.ModuleSuffix
	entry := module + "." + style.EntryPoint

	if t.Args.Kind == task.NoArgs {
		return fmt.Sprintf("    %s -> %s", t.Name, entry)
	}

	names := fieldNames(t.Args.RawText)
	pattern := t.Name
	args := module + ".Args"
	if len(names) > 0 {
		binds := make([]string, len(names))
		sets := make([]string, len(names))
		for i, n := range names {
			binds[i] = n + " = " + n
			sets[i] = module + "." + n + " = " + n
		}
		pattern = fmt.Sprintf("%s { %s }", t.Name, strings.Join(binds, ", "))
		args = fmt.Sprintf("%s.Args { %s }", module, strings.Join(sets, ", "))
	}
	return fmt.Sprintf("    %s -> %s %s", pattern, entry, args)
}

// variantName returns the command constructor text for a task: its casified
// name plus, for argument-bearing shapes, the record suffix derived from
// the Args declaration.
func variantName(t task.Task) string {
	if t.Args.Kind == task.NoArgs {
		return t.Name
	}
	return t.Name + variantSuffix(t.Args.RawText)
}

// variantSuffix derives the record portion of a variant from the raw Args
// declaration: take the prefix up to the first '}', cut it before its first
// '{', re-close the brace, and prepend a space. Text with no brace yields no
// suffix. The take-then-drop composition is a load-bearing quirk: it is not
// a balanced-brace extraction and behaves oddly on repeated or unbalanced
// braces, and the generated variants depend on it staying exactly this way.
func variantSuffix(text string) string {
	prefix := text
	if i := strings.IndexByte(text, '}'); i >= 0 {
		prefix = text[:i]
	}
	j := strings.IndexByte(prefix, '{')
	if j < 0 {
		return ""
	}
	return " " + prefix[j:] + "}"
}

// fieldNames re-extracts the record field names from an Args declaration via
// its variant suffix: the text between the braces, split on commas, each
// piece cut at its type annotation.
func fieldNames(rawText string) []string {
	body := strings.TrimSpace(variantSuffix(rawText))
	body = strings.TrimPrefix(body, "{")
	body = strings.TrimSuffix(body, "}")
	if strings.TrimSpace(body) == "" {
		return nil
	}

	var names []string
	for _, field := range strings.Split(body, ",") {
		name := field
		if i := strings.Index(field, "::"); i >= 0 {
			name = field[:i]
		}
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
