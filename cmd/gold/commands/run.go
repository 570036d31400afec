package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [args...]",
		Short: "Build the project and run the primary executable",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := c.app.Run(cmd.Context(), args)
			if err != nil {
				return err
			}
			// The built program's exit code becomes our own.
			c.exitCode = code
			return nil
		},
	}
}
