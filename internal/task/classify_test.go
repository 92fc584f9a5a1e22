package task

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile places content at the given relative path under dir.
func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	abs := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
}

func TestClassify_NoArgs(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "PingTask.hs", "module PingTask where\n\ntask :: IO ()\ntask = pure ()\n")

	got, outcome, err := Classify(tmpDir, "PingTask.hs", DefaultRules())
	require.NoError(t, err)
	require.Equal(t, Accepted, outcome)

	assert.Equal(t, "Ping", got.ModuleQualifier)
	assert.Equal(t, "Ping", got.Name)
	assert.Equal(t, NoArgs, got.Args.Kind)
	assert.Empty(t, got.Args.RawText)
}

func TestClassify_Record(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "MyTask.hs", "module MyTask where\n\ndata Args = Args { count :: Int }\n\ntask :: Args -> IO ()\ntask _ = pure ()\n")

	got, outcome, err := Classify(tmpDir, "MyTask.hs", DefaultRules())
	require.NoError(t, err)
	require.Equal(t, Accepted, outcome)

	assert.Equal(t, Record, got.Args.Kind)
	assert.Equal(t, "data Args = Args { count :: Int }", got.Args.RawText)
}

func TestClassify_MultiLineRecord(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "DeployTask.hs",
		"module DeployTask where\n\ndata Args = Args\n  { env :: String\n  , dry :: Bool\n  }\n\ntask :: Args -> IO ()\ntask _ = pure ()\n")

	got, outcome, err := Classify(tmpDir, "DeployTask.hs", DefaultRules())
	require.NoError(t, err)
	require.Equal(t, Accepted, outcome)

	assert.Equal(t, Record, got.Args.Kind)
	assert.Equal(t, "data Args = Args { env :: String , dry :: Bool }", got.Args.RawText)
}

func TestClassify_Positional(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "EchoTask.hs", "module EchoTask where\n\ndata Args = Args String\n\ntask :: Args -> IO ()\ntask _ = pure ()\n")

	got, outcome, err := Classify(tmpDir, "EchoTask.hs", DefaultRules())
	require.NoError(t, err)
	require.Equal(t, Accepted, outcome)

	assert.Equal(t, Positional, got.Args.Kind)
	assert.Equal(t, "data Args = Args String", got.Args.RawText)
}

func TestClassify_NestedQualifier(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "Deploy/Db/MigrateUpTask.hs", "module Deploy.Db.MigrateUpTask where\n\ntask :: IO ()\ntask = pure ()\n")

	got, outcome, err := Classify(tmpDir, "Deploy/Db/MigrateUpTask.hs", DefaultRules())
	require.NoError(t, err)
	require.Equal(t, Accepted, outcome)

	assert.Equal(t, "Deploy.Db.MigrateUp", got.ModuleQualifier)
	assert.Equal(t, "Migrate_Up", got.Name)
}

func TestClassify_LegacySuffix(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "PingTask.lhs", "module PingTask where\n\ntask :: IO ()\ntask = pure ()\n")

	got, outcome, err := Classify(tmpDir, "PingTask.lhs", DefaultRules())
	require.NoError(t, err)
	require.Equal(t, Accepted, outcome)
	assert.Equal(t, "Ping", got.Name)
}

func TestClassify_Skips(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "readme.md", "notes\n")
	writeFile(t, tmpDir, "fooTask.hs", "module FooTask where\n")
	writeFile(t, tmpDir, "bad dir/OkTask.hs", "module OkTask where\n")

	tests := []struct {
		name string
		rel  string
		want Outcome
	}{
		{"wrong suffix", "readme.md", SkippedSuffix},
		// Correct suffix, lowercase base identifier.
		{"lowercase base", "fooTask.hs", SkippedName},
		{"invalid directory segment", "bad dir/OkTask.hs", SkippedName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, outcome, err := Classify(tmpDir, tt.rel, DefaultRules())
			require.NoError(t, err)
			assert.Equal(t, tt.want, outcome)
		})
	}
}

func TestClassify_PrimeAndUnderscoreAccepted(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "Foo_Bar'Task.hs", "module Foo_Bar'Task where\n\ntask :: IO ()\ntask = pure ()\n")

	_, outcome, err := Classify(tmpDir, "Foo_Bar'Task.hs", DefaultRules())
	require.NoError(t, err)
	assert.Equal(t, Accepted, outcome)
}

func TestClassify_UnreadableFileIsFatal(t *testing.T) {
	t.Parallel()

	// Suffix and name checks pass, but the file does not exist.
	_, _, err := Classify(t.TempDir(), "GhostTask.hs", DefaultRules())
	assert.Error(t, err)
}

func TestClassify_ArgsPrefixIsLiteral(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	// "data Argsy" still matches the literal "data Args" prefix; the
	// extractor is a heuristic, not a parser.
	writeFile(t, tmpDir, "OddTask.hs", "module OddTask where\n\ndata Argsy = Argsy\n\ntask :: IO ()\ntask = pure ()\n")

	got, outcome, err := Classify(tmpDir, "OddTask.hs", DefaultRules())
	require.NoError(t, err)
	require.Equal(t, Accepted, outcome)
	assert.Equal(t, Positional, got.Args.Kind)
}
