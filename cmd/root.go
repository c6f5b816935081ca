package cmd

import (
	"github.com/heweile/MoviePilot-Plugins/cmd/chat"
	"github.com/heweile/MoviePilot-Plugins/cmd/check"
	"github.com/heweile/MoviePilot-Plugins/cmd/list"
	"github.com/heweile/MoviePilot-Plugins/cmd/show"
	"github.com/heweile/MoviePilot-Plugins/cmd/upload"
	"github.com/heweile/MoviePilot-Plugins/cmd/write"
	"github.com/heweile/MoviePilot-Plugins/logger"
	"github.com/heweile/MoviePilot-Plugins/manifest"

	"github.com/spf13/cobra"
)

var verbose = false
var jsonLog = false

// RootCmd represents the root command. Run without a subcommand it writes
// the chatroom manifest to ./package.json.
var RootCmd = &cobra.Command{
	Use:           "mpplugin",
	Short:         "Write MoviePilot plugin manifests",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(verbose, jsonLog)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := manifest.WriteDefault(".")
		if err != nil {
			return err
		}
		logger.Info("Wrote manifest", "plugin", manifest.DefaultPlugin, "path", path)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(write.Cmd)
	RootCmd.AddCommand(show.Cmd)
	RootCmd.AddCommand(list.Cmd)
	RootCmd.AddCommand(check.Cmd)
	RootCmd.AddCommand(upload.Cmd)
	RootCmd.AddCommand(chat.Cmd)
	RootCmd.AddCommand(genBashCompletionCmd)

	flags := RootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", verbose, "Verbose logging")
	flags.BoolVar(&jsonLog, "log-json", jsonLog, "Log as JSON")
}

var genBashCompletionCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completions file",
	Run: func(cmd *cobra.Command, args []string) {
		RootCmd.GenBashCompletion(cmd.OutOrStdout())
	},
}
