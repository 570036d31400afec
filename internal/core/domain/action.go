package domain

// ActionKind enumerates the kinds of build actions.
type ActionKind int

const (
	// ActionCompile compiles one source file into an object file.
	ActionCompile ActionKind = iota
	// ActionLink links a target's objects and dependency artifacts into its
	// final artifact.
	ActionLink
)

// Action is one scheduled unit of work. Actions are created by the planner,
// consumed by the executor, and never persisted across runs.
type Action struct {
	Kind       ActionKind
	Target     string
	TargetKind TargetKind

	// Compiler is the compiler driver for the step, resolved from the
	// project manifest during planning.
	Compiler string

	// Source is the file being compiled. Compile actions only.
	Source string

	// Inputs are the link inputs: the target's objects followed by the
	// archive artifacts of its static library dependencies. Link actions
	// only.
	Inputs []string

	// Output is the object file for compile actions and the linked artifact
	// for link actions.
	Output string

	// Flags are the fully resolved flags for the step: compile flags plus
	// -I arguments for compile actions, link flags for link actions.
	Flags []string

	// SysLibs are the system library names linked with -l. Link actions
	// only. Contributed by directly declared external dependencies.
	SysLibs []string
}

// ID returns a short human-readable identifier for tracing and logs.
func (a *Action) ID() string {
	if a.Kind == ActionCompile {
		return "compile " + a.Source
	}
	return "link " + a.Output
}
