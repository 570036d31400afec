package artifact_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/goldbuild/gold/internal/adapters/artifact"
	"github.com/goldbuild/gold/internal/core/domain"
	"github.com/goldbuild/gold/internal/core/ports/mocks"
)

func newStore(t *testing.T) *artifact.Store {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	return artifact.NewStore(logger)
}

func testGraph(t *testing.T) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	require.NoError(t, g.RegisterTarget("core", domain.StaticLib))
	require.NoError(t, g.RegisterTarget("app", domain.Executable))
	require.NoError(t, g.AddSources("core", "core.c"))
	require.NoError(t, g.AddSources("app", "main.c"))
	require.NoError(t, g.AddDependencies("app", "core"))
	require.NoError(t, g.Finalize())
	return g
}

func TestStore_Clean(t *testing.T) {
	t.Chdir(t.TempDir())
	s := newStore(t)
	g := testGraph(t)

	// Stage the full set of outputs plus a source that must survive.
	for _, name := range []string{"core.o", "core.a", "main.o", "app", "main.c"} {
		require.NoError(t, os.WriteFile(name, []byte("x"), 0o644))
	}

	require.NoError(t, s.Clean(g))

	for _, name := range []string{"core.o", "core.a", "main.o", "app"} {
		_, err := os.Stat(name)
		assert.True(t, os.IsNotExist(err), "%s must be removed", name)
	}
	_, err := os.Stat("main.c")
	assert.NoError(t, err, "sources must not be touched")

	// Cleaning with nothing left on disk is not an error.
	require.NoError(t, s.Clean(g))
}

func TestStore_Run_NoExecutable(t *testing.T) {
	s := newStore(t)

	g := domain.NewGraph()
	require.NoError(t, g.RegisterTarget("core", domain.StaticLib))
	require.NoError(t, g.Finalize())

	_, err := s.Run(context.Background(), g, nil)
	assert.True(t, errors.Is(err, domain.ErrNoExecutableTarget))
}

func TestStore_Run_ArtifactMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	s := newStore(t)
	g := testGraph(t)

	_, err := s.Run(context.Background(), g, nil)
	assert.True(t, errors.Is(err, domain.ErrArtifactMissing))
}

func TestStore_Run_ExitCode(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	s := newStore(t)
	g := testGraph(t)

	script := "#!/bin/sh\nexit 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app"), []byte(script), 0o755))

	code, err := s.Run(context.Background(), g, []string{"--ignored"})
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestStore_Run_Success(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	s := newStore(t)
	g := testGraph(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "app"), []byte("#!/bin/sh\nexit 0\n"), 0o755))

	code, err := s.Run(context.Background(), g, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}
