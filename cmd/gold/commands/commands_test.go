package commands_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldbuild/gold/cmd/gold/commands"
	"github.com/goldbuild/gold/internal/adapters/artifact"
	"github.com/goldbuild/gold/internal/adapters/config"
	"github.com/goldbuild/gold/internal/adapters/fs"
	"github.com/goldbuild/gold/internal/adapters/logger"
	"github.com/goldbuild/gold/internal/adapters/state"
	"github.com/goldbuild/gold/internal/adapters/telemetry"
	"github.com/goldbuild/gold/internal/app"
	"github.com/goldbuild/gold/internal/core/domain"
	"github.com/goldbuild/gold/internal/engine/planner"
	"github.com/goldbuild/gold/internal/engine/scheduler"
)

// scriptToolchain produces output files without a real compiler. Executables
// become a script exiting with its argument count.
type scriptToolchain struct {
	invocations atomic.Int64
}

func (s *scriptToolchain) Invoke(_ context.Context, a *domain.Action) (string, error) {
	s.invocations.Add(1)
	if a.Kind == domain.ActionLink && a.TargetKind == domain.Executable {
		return "", os.WriteFile(a.Output, []byte("#!/bin/sh\nexit $#\n"), 0o755)
	}
	return "", os.WriteFile(a.Output, []byte("out"), 0o644)
}

func setupWorkspace(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())

	manifest := `
targets:
  app:
    kind: executable
    sources: [main.c]
`
	require.NoError(t, os.WriteFile("gold.yaml", []byte(manifest), 0o644))
	require.NoError(t, os.WriteFile("main.c", []byte("int main(void) { return 0; }\n"), 0o644))
}

func newCLI(t *testing.T) (*commands.CLI, *scriptToolchain) {
	t.Helper()

	log := logger.New()
	log.SetOutput(io.Discard)

	store, err := state.NewStore(state.DefaultPath)
	require.NoError(t, err)

	detector := fs.NewDetector(fs.NewHasher())
	tracer := telemetry.NewNoOpTracer()
	tc := &scriptToolchain{}

	a := app.New(
		config.NewFileLoader(""),
		planner.NewPlanner(detector, store),
		scheduler.NewScheduler(tc, detector, store, tracer, log),
		artifact.NewStore(log),
		store,
		tracer,
		log,
	)
	return commands.New(a), tc
}

// A bare invocation builds the project incrementally.
func TestCLI_DefaultBuilds(t *testing.T) {
	setupWorkspace(t)
	cli, tc := newCLI(t)
	cli.SetArgs(nil)

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, int64(2), tc.invocations.Load())
	assert.FileExists(t, "app")
	assert.Equal(t, 0, cli.ExitCode())
}

func TestCLI_Force(t *testing.T) {
	setupWorkspace(t)

	cli, _ := newCLI(t)
	cli.SetArgs(nil)
	require.NoError(t, cli.Execute(context.Background()))

	// An incremental rebuild does nothing; force redoes everything.
	cli, tc := newCLI(t)
	cli.SetArgs(nil)
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, int64(0), tc.invocations.Load())

	cli, tc = newCLI(t)
	cli.SetArgs([]string{"force"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, int64(2), tc.invocations.Load())
}

func TestCLI_Clean(t *testing.T) {
	setupWorkspace(t)

	cli, _ := newCLI(t)
	cli.SetArgs(nil)
	require.NoError(t, cli.Execute(context.Background()))
	assert.FileExists(t, "app")

	cli, _ = newCLI(t)
	cli.SetArgs([]string{"clean"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.NoFileExists(t, "app")
	assert.NoFileExists(t, "main.o")
	assert.NoFileExists(t, state.DefaultPath)
}

func TestCLI_RunPassesExitCode(t *testing.T) {
	setupWorkspace(t)
	cli, _ := newCLI(t)
	cli.SetArgs([]string{"run", "alpha", "beta"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, 2, cli.ExitCode())
}

func TestCLI_ConfigFlag(t *testing.T) {
	setupWorkspace(t)
	require.NoError(t, os.Rename("gold.yaml", "other.yaml"))

	cli, _ := newCLI(t)
	cli.SetArgs(nil)
	require.Error(t, cli.Execute(context.Background()), "default manifest is gone")

	cli, _ = newCLI(t)
	cli.SetArgs([]string{"--config", "other.yaml"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.FileExists(t, "app")
}

// A manifest in a subdirectory builds inside that subdirectory, not in the
// invocation directory.
func TestCLI_ConfigFlagInSubdir(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.Mkdir("sub", 0o755))

	manifest := `
targets:
  app:
    kind: executable
    sources: [main.c]
`
	require.NoError(t, os.WriteFile(filepath.Join("sub", "gold.yaml"), []byte(manifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join("sub", "main.c"), []byte("int main(void) { return 0; }\n"), 0o644))

	cli, _ := newCLI(t)
	cli.SetArgs([]string{"--config", filepath.Join("sub", "gold.yaml")})
	require.NoError(t, cli.Execute(context.Background()))

	assert.FileExists(t, filepath.Join("sub", "main.o"))
	assert.FileExists(t, filepath.Join("sub", "app"))
	assert.NoFileExists(t, "app")
}

func TestCLI_JobsFlag(t *testing.T) {
	setupWorkspace(t)
	cli, _ := newCLI(t)
	cli.SetArgs([]string{"-j", "1"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.FileExists(t, "app")
}

func TestCLI_UnknownCommand(t *testing.T) {
	setupWorkspace(t)
	cli, _ := newCLI(t)
	cli.SetArgs([]string{"frobnicate"})

	require.Error(t, cli.Execute(context.Background()))
}

func TestCLI_Version(t *testing.T) {
	setupWorkspace(t)
	cli, _ := newCLI(t)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
}

func TestCLI_MissingManifest(t *testing.T) {
	t.Chdir(t.TempDir())
	cli, _ := newCLI(t)
	cli.SetArgs(nil)

	require.Error(t, cli.Execute(context.Background()))
}
