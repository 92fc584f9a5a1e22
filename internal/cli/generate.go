package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/thruflo/taskgen/internal/config"
	"github.com/thruflo/taskgen/internal/gen"
	"github.com/thruflo/taskgen/internal/logging"
	"github.com/thruflo/taskgen/internal/scan"
	"github.com/thruflo/taskgen/internal/task"
)

var generateVerbose bool

// usageLine is printed, together with the raw argument list, when the
// command receives fewer positional arguments than the generator contract
// requires. The invocation still succeeds; build scripts historically rely
// on that.
const usageLine = "usage: taskgen generate <source-entry> <placeholder> <destination>"

var generateCmd = &cobra.Command{
	Use:   "generate <source-entry> <placeholder> <destination>",
	Short: "Discover task files and write the generated dispatcher module",
	Long: `Discover task files and write the generated dispatcher module.

The scan root is the directory containing <source-entry>; the entry file
itself is excluded from discovery so it is never mistaken for a task. The
second argument is accepted and ignored (invocation compatibility
placeholder). The generated module is written to <destination>, replacing
any previous content.

Conventions (task suffixes, entry-point name, generated type names) come
from an optional .taskgen.yaml in the scan root; without one the stock
conventions apply.

Example:
  taskgen generate src/main.hs _ src/Generated.hs`,
	Args: cobra.ArbitraryArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "log per-candidate classification decisions")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	applyEnv()
	if generateVerbose {
		logging.SetLevel(logging.LevelDebug)
	}

	if len(args) < 3 {
		fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		fmt.Fprintf(cmd.OutOrStdout(), "received arguments: %v\n", args)
		return nil
	}

	sourcePath := args[0]
	destination := args[2]
	root := filepath.Dir(sourcePath)

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	artifact, err := generateModule(root, filepath.Base(sourcePath), sourcePath, cfg)
	if err != nil {
		return err
	}

	return gen.Emit(destination, artifact)
}

// generateModule runs scan -> classify -> generate and returns the fully
// assembled module text. Nothing is written here, so an aborted run leaves
// no partial output.
func generateModule(root, exclude, sourcePath string, cfg *config.Config) (string, error) {
	files, err := scan.Scan(root, exclude)
	if err != nil {
		return "", err
	}

	rules := task.Rules{Suffixes: cfg.TaskSuffixes}
	var tasks []task.Task
	for _, rel := range files {
		t, outcome, err := task.Classify(root, rel, rules)
		if err != nil {
			return "", err
		}
		if outcome != task.Accepted {
			logging.Debug("skipping candidate", "path", rel, "reason", outcome.String())
			continue
		}
		logging.Debug("classified task", "path", rel, "name", t.Name)
		tasks = append(tasks, t)
	}

	logging.Info("generating dispatcher", "tasks", len(tasks), "source", sourcePath)
	return gen.Generate(sourcePath, tasks, styleFrom(cfg)), nil
}

// styleFrom maps the project config onto the generator's conventions.
func styleFrom(cfg *config.Config) gen.Style {
	return gen.Style{
		ModuleSuffix:  cfg.ModuleSuffix,
		EntryPoint:    cfg.EntryPoint,
		CommandType:   cfg.CommandType,
		SupportImport: cfg.SupportImport,
		Extensions:    cfg.Extensions,
		Deriving:      cfg.Deriving,
	}
}

// applyEnv loads a .env file from the working directory when present and
// honors TASKGEN_LOG_LEVEL.
func applyEnv() {
	_ = godotenv.Load()
	if name := os.Getenv("TASKGEN_LOG_LEVEL"); name != "" {
		if level, ok := logging.ParseLevel(name); ok {
			logging.SetLevel(level)
		}
	}
}
