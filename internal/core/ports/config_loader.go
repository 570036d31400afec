package ports

import "github.com/goldbuild/gold/internal/core/domain"

// ConfigLoader loads the build configuration into a finalized target graph.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest at the given path, or the default manifest in
	// the working directory when path is empty, and returns the project
	// with its finalized graph.
	Load(path string) (*domain.Project, error)
}
