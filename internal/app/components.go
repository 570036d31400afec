package app

import "github.com/goldbuild/gold/internal/core/ports"

// Components bundles the resolved application roots handed to the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}
