package commands

import (
	"github.com/spf13/cobra"
	"github.com/yigit/sportsmeet/internal/bootstrap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending SQL migrations",
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

		return bootstrap.RunMigrations(cmd.Context(), database, lgr)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
