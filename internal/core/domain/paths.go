package domain

import (
	"path/filepath"
	"strings"
)

// Artifact file extensions per target kind.
const (
	ObjectExt    = ".o"
	StaticLibExt = ".a"
	SharedLibExt = ".so"
)

// ObjectPath returns the object file produced by compiling source. The
// object lives next to its source.
func ObjectPath(source string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + ObjectExt
}

// ArtifactExt returns the file extension of a linked artifact.
// Executables carry no extension.
func ArtifactExt(kind TargetKind) string {
	switch kind {
	case StaticLib:
		return StaticLibExt
	case SharedLib:
		return SharedLibExt
	default:
		return ""
	}
}

// ArtifactPath returns the path of the target's linked output.
func (t *Target) ArtifactPath() string {
	name := t.Name + ArtifactExt(t.Kind)
	if t.OutputDir == "" {
		return name
	}
	return filepath.Join(t.OutputDir, name)
}

// ObjectPaths returns the object files for all of the target's sources, in
// source order.
func (t *Target) ObjectPaths() []string {
	objs := make([]string, len(t.Sources))
	for i, src := range t.Sources {
		objs[i] = ObjectPath(src)
	}
	return objs
}
