package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-switcher/internal/config"
	myHTTP "github.com/MKhiriev/go-account-switcher/internal/handler/http"
	"github.com/MKhiriev/go-account-switcher/internal/logger"
	"github.com/MKhiriev/go-account-switcher/internal/server"
	"github.com/MKhiriev/go-account-switcher/internal/service"
	"github.com/MKhiriev/go-account-switcher/internal/store"
	"github.com/MKhiriev/go-account-switcher/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-account-directory")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	srv, err := server.NewServer(myHTTP.NewHandler(services, cfg, log), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
