package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *console) newDestroyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "destroy <kind> <id>",
		Short: "Delete a record and save the store",
		Args:  positional(argClass, argID),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.find(args[0], args[1]); err != nil {
				return err
			}
			if err := c.store.Delete(args[0], args[1]); err != nil {
				return err
			}
			if err := c.store.Save(); err != nil {
				return systemError(fmt.Errorf("save: %w", err))
			}
			return nil
		},
	}
}
