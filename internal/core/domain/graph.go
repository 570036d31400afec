// Package domain contains the core domain model for the build engine: the
// target graph, build actions, compilation records, and build results.
package domain

import (
	"iter"
	"strings"

	"go.trai.ch/zerr"
)

// Graph is the in-memory model of targets and external dependencies. It is
// built incrementally by registration calls and becomes immutable once
// Finalize succeeds, so planning and execution can read it concurrently.
type Graph struct {
	targets   map[string]*Target
	externals map[string]*ExternalDep

	// order preserves target registration order. It is the tie-break for
	// targets with no ordering constraint between them, which keeps build
	// order deterministic.
	order []string

	execOrder  []string
	dependents map[string][]string
	finalized  bool
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		targets:   make(map[string]*Target),
		externals: make(map[string]*ExternalDep),
	}
}

// RegisterTarget adds a target with the given name and kind.
// It returns ErrDuplicateName if the name is already taken by a target or an
// external dependency.
func (g *Graph) RegisterTarget(name string, kind TargetKind) error {
	if g.finalized {
		return ErrGraphFinalized
	}
	if g.taken(name) {
		return Annotate(ErrDuplicateName, "name", name)
	}
	g.targets[name] = &Target{Name: name, Kind: kind}
	g.order = append(g.order, name)
	return nil
}

// RegisterExternal adds an external dependency with the given name and kind.
// Path is the archive directory for ExternalStaticLib and ignored otherwise.
func (g *Graph) RegisterExternal(name string, kind ExternalKind, path string) error {
	if g.finalized {
		return ErrGraphFinalized
	}
	if g.taken(name) {
		return Annotate(ErrDuplicateName, "name", name)
	}
	g.externals[name] = &ExternalDep{Name: name, Kind: kind, Path: path}
	return nil
}

func (g *Graph) taken(name string) bool {
	if _, ok := g.targets[name]; ok {
		return true
	}
	_, ok := g.externals[name]
	return ok
}

// AddSources appends source files to a registered target.
func (g *Graph) AddSources(target string, paths ...string) error {
	t, err := g.mutable(target)
	if err != nil {
		return err
	}
	t.Sources = append(t.Sources, paths...)
	return nil
}

// AddIncludeDirs appends include directories to a registered target. Include
// directories apply to the target's own compile steps only and are never
// inherited across dependency edges.
func (g *Graph) AddIncludeDirs(target string, dirs ...string) error {
	t, err := g.mutable(target)
	if err != nil {
		return err
	}
	t.IncludeDirs = append(t.IncludeDirs, dirs...)
	return nil
}

// AddDependencies appends dependency edges to a registered target. Every
// name must already be registered as a target or an external dependency.
func (g *Graph) AddDependencies(target string, names ...string) error {
	t, err := g.mutable(target)
	if err != nil {
		return err
	}
	for _, name := range names {
		if !g.taken(name) {
			return zerr.With(Annotate(ErrUnknownTarget, "dependency", name), "target", target)
		}
	}
	t.Dependencies = append(t.Dependencies, names...)
	return nil
}

// AddCompileFlags appends compiler flag overrides to a registered target.
func (g *Graph) AddCompileFlags(target string, flags ...string) error {
	t, err := g.mutable(target)
	if err != nil {
		return err
	}
	t.CompileFlags = append(t.CompileFlags, flags...)
	return nil
}

// AddLinkFlags appends linker flag overrides to a registered target.
func (g *Graph) AddLinkFlags(target string, flags ...string) error {
	t, err := g.mutable(target)
	if err != nil {
		return err
	}
	t.LinkFlags = append(t.LinkFlags, flags...)
	return nil
}

// SetOutputDir sets the directory the target's linked artifact is written to.
func (g *Graph) SetOutputDir(target, dir string) error {
	t, err := g.mutable(target)
	if err != nil {
		return err
	}
	t.OutputDir = dir
	return nil
}

func (g *Graph) mutable(target string) (*Target, error) {
	if g.finalized {
		return nil, ErrGraphFinalized
	}
	t, ok := g.targets[target]
	if !ok {
		return nil, Annotate(ErrUnknownTarget, "target", target)
	}
	return t, nil
}

// Finalize validates the graph and freezes it. It checks that every
// dependency is registered and of a linkable kind, detects cycles, and
// computes the topological build order. After Finalize succeeds the graph is
// read-only and safe for concurrent reads.
func (g *Graph) Finalize() error {
	if g.finalized {
		return ErrGraphFinalized
	}

	if err := g.validateEdges(); err != nil {
		return err
	}
	if err := g.sort(); err != nil {
		return err
	}

	g.indexDependents()
	g.finalized = true
	return nil
}

func (g *Graph) validateEdges() error {
	for _, name := range g.order {
		for _, dep := range g.targets[name].Dependencies {
			if t, ok := g.targets[dep]; ok {
				switch t.Kind {
				case Executable:
					return zerr.With(Annotate(ErrExecutableDependency, "target", name), "dependency", dep)
				case SharedLib:
					return zerr.With(Annotate(ErrSharedLibDependency, "target", name), "dependency", dep)
				}
				continue
			}
			if _, ok := g.externals[dep]; !ok {
				return zerr.With(Annotate(ErrUnknownTarget, "dependency", dep), "target", name)
			}
		}
	}
	return nil
}

// sort computes the topological order with a three-color depth-first
// traversal. External dependencies are leaves by definition and are excluded
// from the order.
func (g *Graph) sort() error {
	const (
		unvisited = 0
		visiting  = 1
		visited   = 2
	)

	g.execOrder = make([]string, 0, len(g.targets))
	colors := make(map[string]int, len(g.targets))
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		colors[name] = visiting
		path = append(path, name)

		for _, dep := range g.targets[name].Dependencies {
			if _, ok := g.targets[dep]; !ok {
				continue // external: leaf by definition
			}
			switch colors[dep] {
			case visiting:
				return g.cycleError(path, dep)
			case unvisited:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		colors[name] = visited
		path = path[:len(path)-1]
		g.execOrder = append(g.execOrder, name)
		return nil
	}

	for _, name := range g.order {
		if colors[name] == unvisited {
			if err := visit(name); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Graph) cycleError(path []string, dep string) error {
	start := 0
	for i, node := range path {
		if node == dep {
			start = i
			break
		}
	}
	cycle := append(append([]string{}, path[start:]...), dep)
	return Annotate(ErrCycleDetected, "cycle", strings.Join(cycle, " -> "))
}

func (g *Graph) indexDependents() {
	g.dependents = make(map[string][]string, len(g.targets))
	for _, name := range g.execOrder {
		for _, dep := range g.targets[name].Dependencies {
			if _, ok := g.targets[dep]; ok {
				g.dependents[dep] = append(g.dependents[dep], name)
			}
		}
	}
}

// Finalized reports whether Finalize has succeeded.
func (g *Graph) Finalized() bool {
	return g.finalized
}

// Target returns the target with the given name.
func (g *Graph) Target(name string) (*Target, bool) {
	t, ok := g.targets[name]
	return t, ok
}

// External returns the external dependency with the given name.
func (g *Graph) External(name string) (*ExternalDep, bool) {
	d, ok := g.externals[name]
	return d, ok
}

// TargetCount returns the number of registered targets.
func (g *Graph) TargetCount() int {
	return len(g.targets)
}

// TopologicalOrder returns target names such that every dependency of a
// target appears before it. It requires a finalized graph.
func (g *Graph) TopologicalOrder() ([]string, error) {
	if !g.finalized {
		return nil, ErrGraphNotFinalized
	}
	return g.execOrder, nil
}

// Dependents returns the names of targets that directly depend on name.
// It requires a finalized graph.
func (g *Graph) Dependents(name string) []string {
	return g.dependents[name]
}

// Walk returns an iterator over targets in topological order. It assumes
// Finalize has been called and succeeded.
func (g *Graph) Walk() iter.Seq[*Target] {
	return func(yield func(*Target) bool) {
		for _, name := range g.execOrder {
			if !yield(g.targets[name]) {
				return
			}
		}
	}
}

// PrimaryExecutable returns the first registered executable target, which is
// the one run invokes.
func (g *Graph) PrimaryExecutable() (*Target, bool) {
	for _, name := range g.order {
		if t := g.targets[name]; t.Kind == Executable {
			return t, true
		}
	}
	return nil, false
}
