package main

import (
	"fmt"

	"github.com/MKhiriev/go-rate-pair/internal/client"
	"github.com/MKhiriev/go-rate-pair/internal/config"
	"github.com/MKhiriev/go-rate-pair/internal/logger"
	"github.com/MKhiriev/go-rate-pair/internal/service"
	"github.com/MKhiriev/go-rate-pair/internal/tui"
	"github.com/MKhiriev/go-rate-pair/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("go-rate-pair")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	services, err := service.NewClientServices(cfg.Converter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

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

func printBuildInfo(info models.AppBuildInfo) {
	orNA := func(v string) string {
		if v == "" {
			return "N/A"
		}
		return v
	}

	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}
