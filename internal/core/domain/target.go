package domain

// TargetKind enumerates the kinds of buildable targets.
type TargetKind int

const (
	// Executable is a linked program.
	Executable TargetKind = iota
	// StaticLib is an archive produced with ar.
	StaticLib
	// SharedLib is a position-independent shared object.
	SharedLib
)

// String returns the manifest spelling of the kind.
func (k TargetKind) String() string {
	switch k {
	case Executable:
		return "executable"
	case StaticLib:
		return "static_lib"
	case SharedLib:
		return "shared_lib"
	default:
		return "unknown"
	}
}

// Target is a named buildable unit: an executable or a library with its
// sources, include directories, and dependency edges. Targets are owned by a
// Graph and mutated only through it.
type Target struct {
	Name         string
	Kind         TargetKind
	OutputDir    string
	Sources      []string
	IncludeDirs  []string
	Dependencies []string
	CompileFlags []string
	LinkFlags    []string
}
