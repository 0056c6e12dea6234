package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hbnb/pkg/models"
)

func (c *console) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show <kind> <id>",
		Short:   "Print a record",
		Example: "  hbnb show City 0b6e1a4e-7b0c-4f55-9d3a-7f1c1c1e2a10",
		Args:    positional(argClass, argID),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.find(args[0], args[1])
			if err != nil {
				return err
			}
			if c.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), models.ToMap(m))
			}
			fmt.Fprintln(cmd.OutOrStdout(), m)
			return nil
		},
	}
}
