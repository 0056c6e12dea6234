package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hbnb/pkg/models"
)

func (c *console) newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all [kind]",
		Short: "Print every record, or every record of one kind",
		Long: `All prints the stored records sorted by key, one per line. With a kind
argument only records of that kind are printed. With --json the records
are printed in their serialized form as one JSON array.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := ""
			if len(args) == 1 {
				kind = args[0]
				if err := checkKind(kind); err != nil {
					return err
				}
			}

			objs := c.store.Filter(kind)
			if c.flags.jsonMode {
				out := make([]map[string]any, len(objs))
				for i, m := range objs {
					out[i] = models.ToMap(m)
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}
			for _, m := range objs {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
}
