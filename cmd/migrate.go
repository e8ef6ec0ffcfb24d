package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"usergroups/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the users and groups tables",
	Run: func(cmd *cobra.Command, args []string) {
		commonSetUp()

		if appCfg.DatabaseDriver == database.DriverMemory {
			log.Info().Msg("Memory driver has no schema, nothing to migrate")
			return
		}

		db, err := database.Open(appCfg.DatabaseDriver, appCfg.DatabaseDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open database")
		}

		log.Info().Str("driver", appCfg.DatabaseDriver).Msg("Running migrations...")
		if err := database.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
		log.Info().Msg("Migrations complete")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
