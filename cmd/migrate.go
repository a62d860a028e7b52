package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eslsoft/coursecatalog/internal/adapter/db"
	appserver "github.com/eslsoft/coursecatalog/internal/app/server"
	"github.com/eslsoft/coursecatalog/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := appserver.NewConfig()
		if err != nil {
			return err
		}
		log, err := logger.New(cfg.LogMode)
		if err != nil {
			return err
		}
		defer log.Sync()

		drv, err := appserver.OpenDatabase(cfg)
		if err != nil {
			return err
		}
		defer drv.Close()

		if err := db.Migrate(cmd.Context(), drv); err != nil {
			return err
		}
		log.Info("schema migrated", "driver", cfg.DatabaseDriver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
