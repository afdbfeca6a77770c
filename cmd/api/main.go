package main

import (
	"os"

	"github.com/ssms/scholarship/internal/pkg/logger"
	"github.com/ssms/scholarship/internal/server"
)

// @title Scholarship Sponsorship Management API
// @version 1.0
// @description Students, sponsors, scholarship programs, allocations and payments, with dashboard aggregations and reports.

// @host localhost:8000
// @BasePath /api
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Setup failures are already logged in detail by bootstrap
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
