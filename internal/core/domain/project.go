package domain

// Project is a loaded build configuration: the finalized target graph plus
// project-wide settings from the manifest.
type Project struct {
	Graph *Graph

	// Compiler is the compiler driver used for compile and link steps.
	Compiler string

	// Root is the directory the manifest was loaded from. Manifest-declared
	// paths are resolved against it during loading, so graph paths already
	// carry the prefix.
	Root string
}
