package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-music-library/internal/config"
	"github.com/MKhiriev/go-music-library/internal/handler"
	"github.com/MKhiriev/go-music-library/internal/logger"
	"github.com/MKhiriev/go-music-library/internal/server"
	"github.com/MKhiriev/go-music-library/internal/service"
	"github.com/MKhiriev/go-music-library/internal/store"
	"github.com/MKhiriev/go-music-library/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).WithDefaults())

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("music-library-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("music-library-server", logger.WithLevel(cfg.Log.Level), logger.WithFile(cfg.Log.File))

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("media_backend", cfg.Storage.Media.Backend).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	// blocks until SIGTERM, SIGINT or SIGQUIT
	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
