package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *console) newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <kind>",
		Short: "Print the number of stored records of a kind",
		Args:  positional(argClass),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkKind(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.store.Count(args[0]))
			return nil
		},
	}
}
