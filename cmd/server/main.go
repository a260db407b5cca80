package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/fleetops/fleet-management/internal/auth"
	"github.com/fleetops/fleet-management/internal/config"
	"github.com/fleetops/fleet-management/internal/db"
	"github.com/fleetops/fleet-management/internal/handlers"
	"github.com/fleetops/fleet-management/internal/middleware"
	"github.com/fleetops/fleet-management/internal/server"
	"github.com/fleetops/fleet-management/internal/services"
	"github.com/fleetops/fleet-management/internal/telemetry"
)

func main() {
	cfg := config.Load()

	logger := log.StandardLogger()
	logger.SetFormatter(&log.JSONFormatter{})
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	client, err := db.ConnectMongo(cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.WithError(err).Warn("Error disconnecting from MongoDB")
		}
	}()
	logger.WithField("database", cfg.Database).Info("Connected to MongoDB")

	database := client.Database(cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		cancel()
		logger.WithError(err).Fatal("Failed to create indexes")
	}
	cancel()

	collections := db.NewCollections(database)
	authService := auth.NewService(cfg)
	authMW := middleware.NewAuthMiddleware(authService)

	h := &server.Handlers{
		Auth:        handlers.NewAuthHandler(authService, collections.Users),
		Vehicles:    handlers.NewVehicleHandler(services.NewVehicleService(collections)),
		Trips:       handlers.NewTripHandler(services.NewTripService(collections)),
		Maintenance: handlers.NewMaintenanceHandler(services.NewMaintenanceService(collections)),
		Inspections: handlers.NewInspectionHandler(services.NewInspectionService(collections)),
		Issues:      handlers.NewIssueHandler(services.NewIssueService(collections)),
		Parts:       handlers.NewPartHandler(services.NewPartService(collections)),
		Reports:     handlers.NewReportHandler(services.NewReportService(collections)),
		Users:       handlers.NewUserHandler(services.NewUserService(collections)),
		Health:      handlers.NewHealthHandler(client, cfg.Database),
	}

	ingestor, err := telemetry.NewIngestor(cfg, collections.Vehicles, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to MQTT broker")
	}
	if ingestor != nil {
		if err := ingestor.Start(); err != nil {
			logger.WithError(err).Fatal("Failed to start telemetry ingest")
		}
		defer ingestor.Stop()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.New(h, authMW),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("port", cfg.Port).Info("HTTP server listening")
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	case sig := <-quit:
		logger.WithField("signal", sig.String()).Info("Shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Graceful shutdown failed")
		}
	}
}
