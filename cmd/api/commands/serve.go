package commands

import (
	"github.com/spf13/cobra"
	"github.com/yigit/sportsmeet/internal/bootstrap"
	"github.com/yigit/sportsmeet/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Apply migrations and start the web server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(cfg, lgr)
	if err != nil {
		return err
	}

	if err := srv.Run(); err != nil {
		return err
	}

	lgr.Info().Msg("Application finished gracefully.")
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
