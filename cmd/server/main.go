package main

import (
	"context"
	"fmt"

	"github.com/pagemark/pagemark/internal/config"
	"github.com/pagemark/pagemark/internal/email"
	"github.com/pagemark/pagemark/internal/handler"
	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/objstore"
	"github.com/pagemark/pagemark/internal/server"
	"github.com/pagemark/pagemark/internal/service"
	"github.com/pagemark/pagemark/internal/store"
	"github.com/pagemark/pagemark/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pagemark-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	objectStore, err := objstore.NewS3Store(ctx, cfg.Storage.S3, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to object store")
	}

	mailer := email.NewClient(cfg.Mailer)

	services := service.NewServices(storages, objectStore, mailer, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	servers, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	servers.RunServer()
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
