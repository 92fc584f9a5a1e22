package config

// Config represents the optional .taskgen.yaml file in the scan root. Every
// field has a default; a missing file means stock behavior.
type Config struct {
	// TaskSuffixes are matched against the end of a candidate's file name.
	TaskSuffixes []string `yaml:"task_suffixes"`

	// ModuleSuffix is appended to a task's qualifier to form its import name.
	ModuleSuffix string `yaml:"module_suffix"`

	// EntryPoint is the function every task module exposes.
	EntryPoint string `yaml:"entry_point"`

	// CommandType names the generated command sum type.
	CommandType string `yaml:"command_type"`

	// SupportImport is the runtime argument-parsing library imported by the
	// generated module.
	SupportImport string `yaml:"support_import"`

	// Extensions are the language extensions enabled in the generated header.
	Extensions []string `yaml:"extensions"`

	// Deriving is the deriving clause on the generated sum type.
	Deriving []string `yaml:"deriving"`
}
