package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/dkaya/collegedb/internal/pkg/logger"
	"github.com/dkaya/collegedb/internal/server"
)

// @title College DBMS API
// @version 1.0
// @description REST API for managing students, departments, courses, enrollments, grades and college identity cards

// @contact.name API Support
// @contact.email support@college.edu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	// A missing .env file is fine; configuration falls back to
	// configs/config.yaml and process environment variables.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

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
	os.Exit(0)
}
