package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldbuild/gold/internal/adapters/config"
	"github.com/goldbuild/gold/internal/core/domain"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gold.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileLoader_Load(t *testing.T) {
	path := writeManifest(t, `
version: "1"
compiler: clang
externals:
  m:
    kind: system_lib
  vendor:
    kind: static_lib
    path: third_party
targets:
  app:
    kind: executable
    sources: [main.c]
    deps: [core, m, vendor]
    ldflags: ["-O2"]
    output_dir: bin
  core:
    kind: static_lib
    sources: [core.c, util.c]
    include_dirs: [include]
    cflags: ["-Wall"]
`)

	project, err := config.NewFileLoader("").Load(path)
	require.NoError(t, err)

	root := filepath.Dir(path)
	assert.Equal(t, "clang", project.Compiler)
	assert.Equal(t, root, project.Root)
	require.True(t, project.Graph.Finalized())

	app, ok := project.Graph.Target("app")
	require.True(t, ok)
	assert.Equal(t, domain.Executable, app.Kind)
	assert.Equal(t, []string{filepath.Join(root, "main.c")}, app.Sources)
	assert.Equal(t, []string{"core", "m", "vendor"}, app.Dependencies)
	assert.Equal(t, []string{"-O2"}, app.LinkFlags)
	assert.Equal(t, filepath.Join(root, "bin", "app"), app.ArtifactPath())

	core, ok := project.Graph.Target("core")
	require.True(t, ok)
	assert.Equal(t, domain.StaticLib, core.Kind)
	assert.Equal(t, []string{filepath.Join(root, "core.c"), filepath.Join(root, "util.c")}, core.Sources)
	assert.Equal(t, []string{filepath.Join(root, "include")}, core.IncludeDirs)
	assert.Equal(t, []string{"-Wall"}, core.CompileFlags)

	vendor, ok := project.Graph.External("vendor")
	require.True(t, ok)
	assert.Equal(t, domain.ExternalStaticLib, vendor.Kind)
	assert.Equal(t, filepath.Join(root, "third_party", "vendor.a"), vendor.LinkInput())

	order, err := project.Graph.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"core", "app"}, order)
}

// A manifest loaded from another directory must build in place: every
// declared path resolves against the manifest's directory, not against
// wherever the tool happens to be invoked. A target without an output
// directory places its artifact next to the manifest.
func TestFileLoader_Load_ResolvesPathsAgainstManifestDir(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	path := filepath.Join(sub, "gold.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
targets:
  app:
    kind: executable
    sources: [main.c]
`), 0o644))

	project, err := config.NewFileLoader("").Load(path)
	require.NoError(t, err)

	app, ok := project.Graph.Target("app")
	require.True(t, ok)
	assert.Equal(t, []string{filepath.Join(sub, "main.c")}, app.Sources)
	assert.Equal(t, []string{filepath.Join(sub, "main.o")}, app.ObjectPaths())
	assert.Equal(t, filepath.Join(sub, "app"), app.ArtifactPath())
}

// The external kind defaults to system_lib when omitted.
func TestFileLoader_Load_DefaultExternalKind(t *testing.T) {
	path := writeManifest(t, `
externals:
  pthread: {}
targets:
  app:
    kind: executable
    sources: [main.c]
    deps: [pthread]
`)

	project, err := config.NewFileLoader("").Load(path)
	require.NoError(t, err)

	pthread, ok := project.Graph.External("pthread")
	require.True(t, ok)
	assert.Equal(t, domain.ExternalSystemLib, pthread.Kind)
}

// Targets may depend on targets declared later in the manifest; map order is
// irrelevant.
func TestFileLoader_Load_ForwardReference(t *testing.T) {
	path := writeManifest(t, `
targets:
  aaa:
    kind: executable
    sources: [main.c]
    deps: [zzz]
  zzz:
    kind: static_lib
    sources: [z.c]
`)

	project, err := config.NewFileLoader("").Load(path)
	require.NoError(t, err)

	order, err := project.Graph.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"zzz", "aaa"}, order)
}

func TestFileLoader_Load_UnknownTargetKind(t *testing.T) {
	path := writeManifest(t, `
targets:
  app:
    kind: dynamic_framework
`)

	_, err := config.NewFileLoader("").Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target kind")
}

func TestFileLoader_Load_UnknownDependency(t *testing.T) {
	path := writeManifest(t, `
targets:
  app:
    kind: executable
    sources: [main.c]
    deps: [ghost]
`)

	_, err := config.NewFileLoader("").Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownTarget))
}

func TestFileLoader_Load_DependencyCycle(t *testing.T) {
	path := writeManifest(t, `
targets:
  a:
    kind: static_lib
    deps: [b]
  b:
    kind: static_lib
    deps: [a]
`)

	_, err := config.NewFileLoader("").Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCycleDetected))
}

func TestFileLoader_Load_NameCollision(t *testing.T) {
	path := writeManifest(t, `
externals:
  core:
    kind: system_lib
targets:
  core:
    kind: static_lib
`)

	_, err := config.NewFileLoader("").Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateName))
}

func TestFileLoader_Load_MissingManifest(t *testing.T) {
	_, err := config.NewFileLoader("").Load(filepath.Join(t.TempDir(), "gold.yaml"))
	require.Error(t, err)
}

func TestFileLoader_Load_InvalidYAML(t *testing.T) {
	path := writeManifest(t, "targets: [not a map")

	_, err := config.NewFileLoader("").Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")
}
