package commands

import (
	"github.com/spf13/cobra"
	"github.com/yigit/sportsmeet/internal/app/repositories"
	"github.com/yigit/sportsmeet/internal/bootstrap"
	"github.com/yigit/sportsmeet/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo accounts and upcoming events",
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

		if err := bootstrap.RunMigrations(cmd.Context(), database, lgr); err != nil {
			return err
		}

		repos := repositories.NewRepositories(database)
		return seed.CreateDemoData(cmd.Context(), repos, bootstrap.Today(cfg), lgr)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
