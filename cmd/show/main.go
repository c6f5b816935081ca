package show

import (
	"fmt"

	"github.com/heweile/MoviePilot-Plugins/manifest"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var plugin = manifest.DefaultPlugin
var outYAML = false

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "show",
	Short: "Print a plugin manifest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Lookup(plugin)
		if err != nil {
			return err
		}
		var out []byte
		if outYAML {
			out, err = yaml.Marshal(m)
		} else {
			out, err = manifest.Encode(m)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s", out)
		return nil
	},
}

func init() {
	flags := Cmd.Flags()
	flags.StringVarP(&plugin, "plugin", "p", plugin, "Plugin id")
	flags.BoolVarP(&outYAML, "yaml", "y", outYAML, "Output YAML")
}
