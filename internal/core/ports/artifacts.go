package ports

import (
	"context"

	"github.com/goldbuild/gold/internal/core/domain"
)

// ArtifactStore locates and removes produced artifacts and invokes the final
// executable.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifacts.go -destination=mocks/mock_artifacts.go -package=mocks
type ArtifactStore interface {
	// Clean deletes every known artifact, objects and linked outputs, for
	// every target in the graph. Missing files are not an error.
	Clean(graph *domain.Graph) error

	// Run invokes the primary executable target's artifact with the given
	// arguments and returns its exit code. It reports
	// domain.ErrNoExecutableTarget if the graph declares no executable and
	// domain.ErrArtifactMissing if the artifact has not been built.
	Run(ctx context.Context, graph *domain.Graph, args []string) (int, error)
}
