package cmd

import (
	"github.com/SundayYogurt/social_user_service/internal/api"
	"github.com/SundayYogurt/social_user_service/internal/repository"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		db, err := api.OpenDatabase(cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		if err := repository.Migrate(db); err != nil {
			return err
		}
		log.Info("migration successful")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
