package main

import (
	"fmt"

	"github.com/MKhiriev/go-exam-watermark/internal/adapter"
	"github.com/MKhiriev/go-exam-watermark/internal/client"
	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/service"
	"github.com/MKhiriev/go-exam-watermark/internal/tui"
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

	log := logger.NewClientLogger("exam-watermark-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, cfg.Exam, log)

	ui, err := tui.New(services, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
