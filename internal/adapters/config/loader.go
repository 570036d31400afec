// Package config loads the gold.yaml project manifest into a target graph.
package config

import (
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/goldbuild/gold/internal/core/domain"
	"github.com/goldbuild/gold/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultFilename is the manifest looked up when none is configured.
const DefaultFilename = "gold.yaml"

var _ ports.ConfigLoader = (*FileLoader)(nil)

// FileLoader implements ports.ConfigLoader reading a yaml manifest from the
// working directory.
type FileLoader struct {
	Filename string
}

// NewFileLoader creates a loader for the given manifest filename.
func NewFileLoader(filename string) *FileLoader {
	if filename == "" {
		filename = DefaultFilename
	}
	return &FileLoader{Filename: filename}
}

// Load reads the manifest and returns the project with its finalized graph.
// Registration happens in sorted name order so build order stays
// deterministic across invocations.
func (l *FileLoader) Load(path string) (*domain.Project, error) {
	if path == "" {
		path = l.Filename
	}
	//nolint:gosec // Manifest path is chosen by the user running the tool
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var file Goldfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", path)
	}

	root := filepath.Dir(path)
	graph, err := buildGraph(&file, root)
	if err != nil {
		return nil, err
	}

	return &domain.Project{
		Graph:    graph,
		Compiler: file.Compiler,
		Root:     root,
	}, nil
}

// buildGraph resolves every manifest-declared path against root, so a
// manifest loaded from another directory builds in place rather than
// relative to wherever gold was invoked.
func buildGraph(file *Goldfile, root string) (*domain.Graph, error) {
	graph := domain.NewGraph()

	for _, name := range sortedKeys(file.Externals) {
		dto := file.Externals[name]
		kind, err := externalKind(dto.Kind)
		if err != nil {
			return nil, zerr.With(err, "external", name)
		}
		if err := graph.RegisterExternal(name, kind, filepath.Join(root, dto.Path)); err != nil {
			return nil, err
		}
	}

	names := sortedKeys(file.Targets)
	for _, name := range names {
		kind, err := targetKind(file.Targets[name].Kind)
		if err != nil {
			return nil, zerr.With(err, "target", name)
		}
		if err := graph.RegisterTarget(name, kind); err != nil {
			return nil, err
		}
	}

	// Wire after registration so targets may depend on later declarations.
	for _, name := range names {
		if err := wireTarget(graph, name, file.Targets[name], root); err != nil {
			return nil, err
		}
	}

	if err := graph.Finalize(); err != nil {
		return nil, err
	}
	return graph, nil
}

func wireTarget(graph *domain.Graph, name string, dto TargetDTO, root string) error {
	if err := graph.AddSources(name, joinAll(root, dto.Sources)...); err != nil {
		return err
	}
	if err := graph.AddIncludeDirs(name, joinAll(root, dto.IncludeDirs)...); err != nil {
		return err
	}
	if err := graph.AddDependencies(name, dto.Deps...); err != nil {
		return err
	}
	if err := graph.AddCompileFlags(name, dto.CFlags...); err != nil {
		return err
	}
	if err := graph.AddLinkFlags(name, dto.LDFlags...); err != nil {
		return err
	}
	return graph.SetOutputDir(name, filepath.Join(root, dto.OutputDir))
}

func joinAll(root string, paths []string) []string {
	joined := make([]string, len(paths))
	for i, path := range paths {
		joined[i] = filepath.Join(root, path)
	}
	return joined
}

func targetKind(kind string) (domain.TargetKind, error) {
	switch kind {
	case "executable":
		return domain.Executable, nil
	case "static_lib":
		return domain.StaticLib, nil
	case "shared_lib":
		return domain.SharedLib, nil
	default:
		return 0, zerr.With(zerr.New("unknown target kind"), "kind", kind)
	}
}

func externalKind(kind string) (domain.ExternalKind, error) {
	switch kind {
	case "system_lib", "":
		return domain.ExternalSystemLib, nil
	case "static_lib":
		return domain.ExternalStaticLib, nil
	default:
		return 0, zerr.With(zerr.New("unknown external dependency kind"), "kind", kind)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
