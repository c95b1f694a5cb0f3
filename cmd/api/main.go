package main

import (
	"os"

	"github.com/atikurshafi/cse327/internal/pkg/logger"
	"github.com/atikurshafi/cse327/internal/server"
)

// @title Class Schedule API
// @version 1.0
// @description Administrative API for university class scheduling: courses, sections, instructors, rooms, timeslots and conflict-checked schedule entries
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@univ.edu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

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
	os.Exit(0)
}
