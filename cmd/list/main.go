package list

import (
	"fmt"

	"github.com/heweile/MoviePilot-Plugins/manifest"
	"github.com/spf13/cobra"
)

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List known plugin ids",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range manifest.IDs() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", id)
		}
		return nil
	},
}
