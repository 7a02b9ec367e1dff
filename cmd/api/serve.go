package main

import (
	"github.com/spf13/cobra"
	"github.com/yigit/schoolapi/internal/pkg/logger"
	"github.com/yigit/schoolapi/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the school API server.

The server will:
  - Load configuration from configs/config.yaml (or --config), .env and the environment
  - Connect to the configured database (postgres or sqlite)
  - Apply pending schema migrations and optional demo data
  - Serve the REST API until SIGINT or SIGTERM

Examples:
  api serve
  DB_DRIVER=sqlite DB_PATH=school.db api serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	srv, err := server.NewServer(cfgFile)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		return err
	}

	// Run blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		return err
	}

	logger.Info().Msg("Application finished gracefully.")
	return nil
}
