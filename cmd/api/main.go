package main

import (
	"os"

	"github.com/erasmusedu/erasmus-portal/internal/pkg/logger"
	"github.com/erasmusedu/erasmus-portal/internal/server"
)

// @title Complexo Erasmus Portal API
// @version 1.0
// @description School administration portal for Complexo Erasmus: public site, role dashboards and the AI mentor

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT session token

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
