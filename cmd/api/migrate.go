package main

import (
	"github.com/spf13/cobra"
	"github.com/yigit/schoolapi/internal/bootstrap"
	"github.com/yigit/schoolapi/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(cfgFile)
	if err != nil {
		return err
	}

	database, err := db.Open(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return err
	}
	defer database.Close()

	return bootstrap.RunMigrations(cmd.Context(), database, lgr)
}
