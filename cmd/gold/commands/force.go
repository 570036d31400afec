package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newForceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "force",
		Short: "Rebuild every target regardless of staleness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Build(cmd.Context(), true)
			return err
		},
	}
}
