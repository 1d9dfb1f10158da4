package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-clinic/internal/config"
	"github.com/MKhiriev/go-clinic/internal/handler"
	"github.com/MKhiriev/go-clinic/internal/logger"
	"github.com/MKhiriev/go-clinic/internal/server"
	"github.com/MKhiriev/go-clinic/internal/service"
	"github.com/MKhiriev/go-clinic/internal/store"
	"github.com/MKhiriev/go-clinic/internal/workers"
	"github.com/MKhiriev/go-clinic/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("clinic-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("clinic-server", cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB, string(db.Dialect())),
	)

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)
	handlers := handler.NewHandlers(services, cfg.Server, registry, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var reporters []workers.HealthReporter
	if handlers.GRPC != nil {
		reporters = append(reporters, handlers.GRPC)
	}
	workers.NewWorkers(
		workers.NewDBProbe(db, cfg.Workers.HealthProbeInterval, log, reporters...),
	).Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
