// Package build carries build-time metadata.
package build

// Version is the application version, injected at link time via
// -ldflags "-X github.com/goldbuild/gold/internal/build.Version=...".
var Version = "dev"
