package main

import (
	"context"
	"fmt"

	"github.com/jobify-dev/jobify/internal/adapter"
	"github.com/jobify-dev/jobify/internal/config"
	"github.com/jobify-dev/jobify/internal/handler"
	"github.com/jobify-dev/jobify/internal/logger"
	"github.com/jobify-dev/jobify/internal/notify"
	"github.com/jobify-dev/jobify/internal/server"
	"github.com/jobify-dev/jobify/internal/service"
	"github.com/jobify-dev/jobify/internal/store"
	"github.com/jobify-dev/jobify/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("jobify-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, db, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer db.Close()

	engine := cfg.Storage.DB.Engine
	if engine == "" {
		engine = store.EnginePostgres
	}
	if err := migrations.Migrate(db.DB, engine); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	notifier := adapter.NewNotifier(cfg.Notifier, log)
	broadcaster := notify.NewFanout(notifier, cfg.Notifier.Workers, log)

	services := service.NewServices(storages, broadcaster, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
