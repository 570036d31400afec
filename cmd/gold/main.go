// Package main is the entry point for the gold CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/goldbuild/gold/cmd/gold/commands"
	"github.com/goldbuild/gold/internal/app"
	"github.com/goldbuild/gold/internal/core/domain"
	_ "github.com/goldbuild/gold/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// The logger is not available if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer components.App.Close() //nolint:errcheck // Best effort flush on exit

	cli := commands.New(components.App)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		// Build failures were already reported target by target.
		if !errors.Is(err, domain.ErrBuildFailed) {
			components.Logger.Error(err)
		}
		return 1
	}
	return cli.ExitCode()
}
