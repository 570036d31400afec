// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/goldbuild/gold/internal/adapters/artifact"
	_ "github.com/goldbuild/gold/internal/adapters/config"
	_ "github.com/goldbuild/gold/internal/adapters/fs"
	_ "github.com/goldbuild/gold/internal/adapters/logger"
	_ "github.com/goldbuild/gold/internal/adapters/state"
	_ "github.com/goldbuild/gold/internal/adapters/telemetry"
	_ "github.com/goldbuild/gold/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "github.com/goldbuild/gold/internal/app"
	_ "github.com/goldbuild/gold/internal/engine/planner"
	_ "github.com/goldbuild/gold/internal/engine/scheduler"
)
