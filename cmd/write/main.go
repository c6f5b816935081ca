package write

import (
	"path/filepath"

	"github.com/heweile/MoviePilot-Plugins/logger"
	"github.com/heweile/MoviePilot-Plugins/manifest"
	"github.com/spf13/cobra"
)

var plugin = manifest.DefaultPlugin
var changeDir = "."
var outName = manifest.DefaultFileName

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "write",
	Short: "Write a plugin manifest, replacing any existing file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Lookup(plugin)
		if err != nil {
			return err
		}
		path := filepath.Join(changeDir, outName)
		logger.Debug("Writing manifest", "plugin", m.ID, "version", m.Version, "path", path)
		if err := manifest.Write(path, m); err != nil {
			return err
		}
		logger.Info("Wrote manifest", "plugin", m.ID, "path", path)
		return nil
	},
}

func init() {
	flags := Cmd.Flags()
	flags.StringVarP(&plugin, "plugin", "p", plugin, "Plugin id")
	flags.StringVarP(&changeDir, "dir", "C", changeDir, "Directory to write into")
	flags.StringVarP(&outName, "out", "o", outName, "Output file name")
}
