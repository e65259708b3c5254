package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pagemark/pagemark/internal/adapter"
	"github.com/pagemark/pagemark/internal/config"
	"github.com/pagemark/pagemark/internal/jobs"
	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/store"
	"github.com/pagemark/pagemark/internal/workers"
)

const shutdownTimeout = 10 * time.Second

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pagemark-jobs")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.Jobs, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening job-status store")
	}
	defer db.Close()

	statuses := store.NewJobStatusRepository(db, log)

	backend, err := adapter.NewHTTPBackendClient(cfg.Jobs, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend client")
	}

	runner := jobs.NewRunner(backend, statuses, cfg.Jobs, log)

	trigger := jobs.NewTriggerHandler(runner, statuses, log)
	triggerServer := &http.Server{
		Addr:    cfg.Jobs.TriggerAddress,
		Handler: trigger.Init(),
	}

	go func() {
		log.Info().Str("address", triggerServer.Addr).Msg("Launching job-trigger HTTP server")

		if err := triggerServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Err(err).Msg("job-trigger server stopped")
			stop()
		}
	}()

	scheduler := jobs.NewScheduler(runner, cfg.Jobs, log)

	// blocks until the stop signal cancels ctx and the scheduler returns
	workers.NewWorkers(scheduler).Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := triggerServer.Shutdown(shutdownCtx); err != nil {
		log.Err(err).Msg("error shutting down job-trigger server")
	}

	log.Info().Msg("job runner Shutdown gracefully")
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
