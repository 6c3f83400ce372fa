package commands

import (
	"github.com/spf13/cobra"
	"github.com/yigit/sportsmeet/internal/app/repositories"
	"github.com/yigit/sportsmeet/internal/app/services"
	"github.com/yigit/sportsmeet/internal/bootstrap"
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every event dated before today",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
		if err != nil {
			return err
		}

		database, err := bootstrap.SetupDatabase(cfg, lgr)
		if err != nil {
			return err
		}
		defer database.Close()

		svc := services.NewServices(services.Deps{
			Repos:    repositories.NewRepositories(database),
			Location: cfg.Location(),
			Logger:   lgr,
		})

		purged, err := svc.Events.PurgePastEvents(cmd.Context())
		if err != nil {
			return err
		}
		lgr.Info().Int64("purged", purged).Msg("Purge finished")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(purgeCmd)
}
