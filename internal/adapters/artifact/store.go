// Package artifact tracks produced build artifacts: cleaning them and
// running the final executable.
package artifact

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/goldbuild/gold/internal/core/domain"
	"github.com/goldbuild/gold/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactStore = (*Store)(nil)

// Store implements ports.ArtifactStore on the local filesystem.
type Store struct {
	logger ports.Logger
}

// NewStore creates a new artifact Store.
func NewStore(logger ports.Logger) *Store {
	return &Store{logger: logger}
}

// Clean deletes every target's objects and linked artifact. Missing files
// are not an error, so Clean is idempotent.
func (s *Store) Clean(graph *domain.Graph) error {
	for target := range graph.Walk() {
		s.logger.Info("cleaning target", "target", target.Name)

		paths := append(target.ObjectPaths(), target.ArtifactPath())
		for _, path := range paths {
			if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return zerr.With(zerr.Wrap(err, "failed to remove artifact"), "path", path)
			}
		}
	}
	return nil
}

// Run invokes the primary executable target's artifact and returns its exit
// code. Standard streams pass through to the caller's.
func (s *Store) Run(ctx context.Context, graph *domain.Graph, args []string) (int, error) {
	target, ok := graph.PrimaryExecutable()
	if !ok {
		return 0, domain.ErrNoExecutableTarget
	}

	path := target.ArtifactPath()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, zerr.With(domain.Annotate(domain.ErrArtifactMissing, "target", target.Name), "path", path)
		}
		return 0, zerr.With(zerr.Wrap(err, "failed to stat artifact"), "path", path)
	}

	// A bare name must be invoked relative to the working directory, not
	// resolved through PATH.
	if !strings.ContainsRune(path, os.PathSeparator) {
		path = "./" + path
	}

	cmd := exec.CommandContext(ctx, path, args...) //nolint:gosec // Running the just-built artifact is the point
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, zerr.With(zerr.Wrap(err, "failed to run artifact"), "path", path)
	}
	return 0, nil
}
