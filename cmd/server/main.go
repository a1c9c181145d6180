package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/handler"
	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/server"
	"github.com/MKhiriev/go-exam-watermark/internal/service"
	"github.com/MKhiriev/go-exam-watermark/internal/store"
	"github.com/MKhiriev/go-exam-watermark/internal/workers"
	"github.com/MKhiriev/go-exam-watermark/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("exam-watermark-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	jobs := workers.NewWorkers(services, cfg.Workers, log)

	srv, err := server.NewServer(handlers, jobs, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
