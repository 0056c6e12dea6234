package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/hbnb/pkg/models"
)

func (c *console) newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "create <kind>",
		Short:   "Create a record, save it and print its id",
		Example: "  hbnb create City",
		Args:    positional(argClass),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkKind(args[0]); err != nil {
				return err
			}
			m, err := models.New(c.store, args[0])
			if err != nil {
				return err
			}
			if err := m.Save(); err != nil {
				return systemError(fmt.Errorf("save: %w", err))
			}
			c.logger.Debug("created object", zap.String("key", models.Key(m)))
			fmt.Fprintln(cmd.OutOrStdout(), m.Base().ID)
			return nil
		},
	}
}
