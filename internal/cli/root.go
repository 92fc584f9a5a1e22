package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "taskgen",
	Short: "Generate the command dispatcher for a tree of task modules",
	Long: `Taskgen scans a source tree for task modules (FooTask.hs files, or the
legacy FooTask.lhs form), reads each one's Args declaration to learn its
invocation shape, and writes a single generated module containing the closed
command sum type plus the dispatcher that routes a parsed command to the
matching task's entry point.

It is a build-time tool: it reads task files as text, never executes them,
and is meant to run once per build invocation.`,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("taskgen version {{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
