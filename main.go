// package main is the entry point for the recent-activity tool
package main

import (
	"fmt"
	"os"

	"github.com/alan/recent-activity/cmd"
	configcmd "github.com/alan/recent-activity/cmd/config"
	"github.com/alan/recent-activity/cmd/update"
	"github.com/alan/recent-activity/internal/config"
	"github.com/alan/recent-activity/internal/logging"
	"github.com/alan/recent-activity/internal/readme"
	"github.com/spf13/cobra"
)

func main() {
	var configFile string
	var logLevel string
	var logFormat string

	rootCmd := &cobra.Command{
		Use:   "recent-activity",
		Short: "Keep a README in sync with your recent GitHub activity",
		Long: fmt.Sprintf(`recent-activity updates the section of a README between the
%s and %s markers with the
latest public issues, pull requests and comments of a GitHub user, then commits
and pushes the change. An optional %s region records when
the update ran.`, readme.StartMarker, readme.EndMarker, readme.LastUpdateMarker),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logging.Setup(logLevel, logFormat)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", cmd.DefaultConfigFile, "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&logFormat, "log-format", "f", "text", "Log format (text, json)")

	rootCmd.AddCommand(configcmd.NewConfigCmd(&configFile, config.LoadConfig, config.SaveConfig))
	rootCmd.AddCommand(update.NewUpdateCmd(&configFile, config.LoadOrDefault))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
