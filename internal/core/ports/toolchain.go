// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/goldbuild/gold/internal/core/domain"
)

// Toolchain invokes a compiler or linker for a single build action.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Invoke runs the toolchain process for the given action and returns
	// its captured diagnostics. A non-zero exit reports
	// domain.ErrToolchainInvocation alongside the diagnostics.
	Invoke(ctx context.Context, action *domain.Action) (string, error)
}
