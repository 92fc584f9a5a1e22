package gen

// Style fixes the textual conventions of the generated module. The defaults
// match what the task runtime expects; a project config may override them.
type Style struct {
	// ModuleSuffix is appended to each task's qualifier to form the task
	// module's import name.
	ModuleSuffix string

	// EntryPoint is the function every task module exposes.
	EntryPoint string

	// CommandType names the generated command sum type.
	CommandType string

	// SupportImport is the runtime argument-parsing library the generated
	// dispatcher relies on.
	SupportImport string

	// Extensions are the language extensions enabled in the header.
	Extensions []string

	// Deriving is the deriving clause attached to the command sum type.
	Deriving []string
}

// DefaultStyle returns the stock generation conventions.
func DefaultStyle() Style {
	return Style{
		ModuleSuffix:  "Task",
		EntryPoint:    "task",
		CommandType:   "Command",
		SupportImport: "System.Console.CmdArgs",
		Extensions:    []string{"DeriveDataTypeable"},
		Deriving:      []string{"Data", "Typeable", "Show"},
	}
}
