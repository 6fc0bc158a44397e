package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/ks-server/internal/config"
	"github.com/MKhiriev/ks-server/internal/handler"
	"github.com/MKhiriev/ks-server/internal/logger"
	"github.com/MKhiriev/ks-server/internal/server"
	"github.com/MKhiriev/ks-server/internal/service"
	"github.com/MKhiriev/ks-server/internal/store"
	"github.com/MKhiriev/ks-server/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("ks-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.SetLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Projects, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	// the bind address is only read once, at startup
	projectsCfg, err := services.ConfigResolver.Resolve(context.Background())
	if err != nil {
		log.Fatal().Err(err).Str("location", storages.ConfigSource.Location()).Msg("error loading projects config")
	}

	handlers, err := handler.NewHandlers(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	address := projectsCfg.Server.Address()
	srv, err := server.NewServer(handlers, address, cfg.Server, cfg.Metrics, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Msgf("Server started at http://%s", address)
	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}
