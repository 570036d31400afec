// Package commands implements the CLI commands for the gold build tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/goldbuild/gold/internal/app"
)

// CLI represents the command line interface for gold.
type CLI struct {
	app      *app.App
	rootCmd  *cobra.Command
	exitCode int
}

// New creates a new CLI instance with the given app. Invoking gold without a
// sub-command builds the project incrementally.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "gold",
		Short:         "An incremental build tool for native code",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the project manifest (default gold.yaml)")
	rootCmd.PersistentFlags().IntP("jobs", "j", 0, "Maximum number of parallel toolchain invocations")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		a.SetManifest(configPath)

		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return err
		}
		a.SetParallelism(jobs)
		return nil
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		_, err := a.Build(cmd.Context(), false)
		return err
	}

	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newForceCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// ExitCode returns the exit code the process should terminate with. It is
// non-zero after run when the built executable exited non-zero.
func (c *CLI) ExitCode() int {
	return c.exitCode
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
