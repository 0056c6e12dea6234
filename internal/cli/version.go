package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the console release.
const Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hbnb version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hbnb v%s\n", Version)
		},
	}
}
