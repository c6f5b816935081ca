package check

import (
	"fmt"

	"github.com/heweile/MoviePilot-Plugins/logger"
	"github.com/heweile/MoviePilot-Plugins/manifest"
	"github.com/heweile/MoviePilot-Plugins/util"
	"github.com/spf13/cobra"
)

var plugin = manifest.DefaultPlugin

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "check [manifest path]",
	Short: "Compare a written manifest with the known descriptor",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := manifest.DefaultFileName
		if len(args) > 0 {
			path = args[0]
		}
		want, err := manifest.Lookup(plugin)
		if err != nil {
			return err
		}
		got, err := manifest.Load(path)
		if err != nil {
			return err
		}
		defer logger.Close()

		diff := manifest.Diff(want, got)
		for _, field := range diff {
			logger.AddSummaryError("Field differs", "plugin", want.ID, "field", field)
		}

		sum, err := util.SHA1(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", sum, path)

		if len(diff) > 0 {
			return fmt.Errorf("%s does not match %s: %d fields differ", path, want.ID, len(diff))
		}
		logger.Info("Manifest matches", "plugin", want.ID, "path", path, "size", util.FileSize(path))
		return nil
	},
}

func init() {
	flags := Cmd.Flags()
	flags.StringVarP(&plugin, "plugin", "p", plugin, "Plugin id")
}
