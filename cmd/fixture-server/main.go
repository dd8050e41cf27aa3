package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-user-dashboard/internal/config"
	"github.com/MKhiriev/go-user-dashboard/internal/fixture"
	"github.com/MKhiriev/go-user-dashboard/internal/handler"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/server"
	"github.com/MKhiriev/go-user-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())

	log := logger.NewLogger("fixture-server")

	cfg, err := config.GetFixtureServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	directory := fixture.NewDirectory(cfg.Users, cfg.BrokenEvery)
	log.Info().
		Int("users", directory.Len()).
		Int("broken_every", cfg.BrokenEvery).
		Msg("fixture directory generated")

	handlers, err := handler.NewHandlers(directory, buildInfo, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}
