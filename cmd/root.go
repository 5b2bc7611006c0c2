package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/glintclean/weekplan/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "weekplan",
	Short: "Weekly feasibility census for a cleaning roster",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig falls back to defaults when the configured file does not
// exist, so the CLI works without any setup.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		return config.Defaults()
	}
	return config.Load(cfgPath)
}
