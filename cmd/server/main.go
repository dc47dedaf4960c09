package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/handler"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/server"
	"github.com/MKhiriev/go-posts/internal/service"
	"github.com/MKhiriev/go-posts/internal/store"
	"github.com/MKhiriev/go-posts/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-posts-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-posts-server", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("static_dir", cfg.Server.StaticDir).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Int("blocking_pool_size", cfg.Workers.BlockingPoolSize).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, log)
	dispatcher := workers.NewDispatcher(cfg.Workers.BlockingPoolSize, cfg.Workers.AcquireTimeout)

	handlers, err := handler.NewHandlers(services, dispatcher, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(handlers.BackgroundWorkers()...), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
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
