package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownTarget is returned when a call references a name that is
	// neither a registered target nor a registered external dependency.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrDuplicateName is returned when registering a name that collides
	// with an existing target or external dependency. Targets and externals
	// share one namespace.
	ErrDuplicateName = zerr.New("duplicate name")

	// ErrCycleDetected is returned when the dependency graph contains a
	// cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrGraphFinalized is returned when mutating a graph after Finalize.
	ErrGraphFinalized = zerr.New("graph is finalized")

	// ErrGraphNotFinalized is returned when an operation requires a
	// finalized graph.
	ErrGraphNotFinalized = zerr.New("graph is not finalized")

	// ErrExecutableDependency is returned when a target depends on an
	// executable target.
	ErrExecutableDependency = zerr.New("cannot depend on an executable target")

	// ErrSharedLibDependency is returned when a target depends on a shared
	// library target. Linking against in-tree shared libraries is not
	// supported.
	ErrSharedLibDependency = zerr.New("shared library dependencies are not supported")

	// ErrMissingSource is returned when a declared source file does not
	// exist on disk.
	ErrMissingSource = zerr.New("source file not found")

	// ErrToolchainInvocation is returned when a single compiler or linker
	// invocation fails. The executor recovers it into target-level failure
	// state.
	ErrToolchainInvocation = zerr.New("toolchain invocation failed")

	// ErrBuildFailed is the aggregate error raised after execution when one
	// or more targets failed. It carries the full failed-target list.
	ErrBuildFailed = zerr.New("build failed")

	// ErrNoExecutableTarget is returned by run when the graph declares no
	// executable target.
	ErrNoExecutableTarget = zerr.New("no executable target declared")

	// ErrArtifactMissing is returned by run when the executable target has
	// not been built yet.
	ErrArtifactMissing = zerr.New("artifact has not been built")
)

// Annotate attaches a key-value pair to one of the sentinel errors above.
// The sentinel is wrapped first so the result still matches it with
// errors.Is; zerr.With on a bare sentinel returns a detached copy that no
// longer unwraps to it. Further pairs can be added with zerr.With, which
// preserves the cause chain on an already wrapped error.
func Annotate(err error, key string, value any) error {
	return zerr.With(zerr.Wrap(err, ""), key, value)
}
