package domain

import "path/filepath"

// ExternalKind enumerates the kinds of external dependencies.
type ExternalKind int

const (
	// ExternalSystemLib is resolved by the linker search path (-lname).
	ExternalSystemLib ExternalKind = iota
	// ExternalStaticLib is a prebuilt archive on disk.
	ExternalStaticLib
)

// String returns the manifest spelling of the kind.
func (k ExternalKind) String() string {
	switch k {
	case ExternalSystemLib:
		return "system_lib"
	case ExternalStaticLib:
		return "static_lib"
	default:
		return "unknown"
	}
}

// ExternalDep is a named dependency that is not built by the engine. It
// carries no build instructions of its own and only contributes link inputs
// to targets that declare it directly.
type ExternalDep struct {
	Name string
	Kind ExternalKind

	// Path is the directory holding the archive for ExternalStaticLib.
	// Unused for ExternalSystemLib.
	Path string
}

// LinkInput returns the path of the archive contributed to a dependent's
// link step. Only meaningful for ExternalStaticLib.
func (d *ExternalDep) LinkInput() string {
	if d.Path == "" {
		return d.Name + StaticLibExt
	}
	return filepath.Join(d.Path, d.Name+StaticLibExt)
}
