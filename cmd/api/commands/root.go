package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yigit/sportsmeet/internal/pkg/logger"
)

var configPath string

// rootCmd runs the web server when no subcommand is given
var rootCmd = &cobra.Command{
	Use:   "sportsmeet",
	Short: "SportsMeet - community sports events",
	Long: `SportsMeet lets organizers publish capacity-limited sports events
and players join them.

Without a subcommand the web server is started.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", filepath.Join("configs", "config.yaml"), "Path to the YAML config file")
}
