package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidgram/internal/core/services"
	"vidgram/internal/infrastructure/api"
	"vidgram/internal/infrastructure/monitoring"
	"vidgram/internal/infrastructure/storage"
	"vidgram/internal/infrastructure/webhost"
	"vidgram/pkg/config"
	"vidgram/pkg/logger"
	"vidgram/pkg/tracing"
)

func main() {
	// Try multiple config paths
	configPaths := []string{
		"configs/config.yaml",
		"./configs/config.yaml",
		"/etc/vidgram/config.yaml",
		"config.yaml",
	}

	var cfg *config.Config
	var err error

	for _, path := range configPaths {
		cfg, err = config.Load(path)
		if err == nil {
			break
		}
	}

	if err != nil {
		// Fallback to defaults if config cannot be loaded
		cfg = config.DefaultConfig()
	}

	// Initialize logger
	zapLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLogger.Sync()

	log := zapLogger.Sugar()

	// Initialize tracing
	if cfg.Tracing.Enabled {
		tracerProvider, err := tracing.Init(tracing.Config{
			Enabled:     true,
			ServiceName: "vidgram-webhost",
			JaegerURL:   cfg.Tracing.JaegerURL,
			Environment: cfg.Tracing.Environment,
			SampleRate:  cfg.Tracing.SampleRate,
		})
		if err != nil {
			log.Warnw("failed to initialize tracing", "error", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tracerProvider.Shutdown(ctx); err != nil {
					log.Warnw("failed to shut down tracing", "error", err)
				}
			}()
		}
	}

	// Initialize session storage
	storageFactory, err := storage.NewFactory(cfg, log)
	if err != nil {
		log.Fatalw("failed to create storage factory", "error", err)
	}

	// Initialize metrics
	var apiMetrics *monitoring.APIMetrics
	if cfg.Monitoring.PrometheusEnabled {
		apiMetrics = monitoring.NewAPIMetrics()
	}

	// Initialize API client and services
	apiClient := api.NewClient(cfg.API.BaseURL, cfg.API.RequestTimeout, cfg.API.UploadTimeout, zapLogger, apiMetrics)

	sessionService := services.NewSessionService(storageFactory.SessionStorage(), apiClient, log)

	restoreCtx, restoreCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := sessionService.Restore(restoreCtx); err != nil {
		log.Warnw("failed to restore session", "error", err)
	}
	restoreCancel()

	// Initialize the web host
	server, err := webhost.NewServer(cfg, log, storageFactory.HealthCheck)
	if err != nil {
		log.Fatalw("failed to create web host", "error", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      server.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Starting Vidgram web host on %s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Fatalw("Server failed", "error", err)
	case sig := <-sigChan:
		log.Infow("Received shutdown signal", "signal", sig)
	}

	log.Info("Shutting down Vidgram web host...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Error during server shutdown", "error", err)
		if closeErr := srv.Close(); closeErr != nil {
			log.Errorw("Error force closing server", "error", closeErr)
		}
	} else {
		log.Info("Server shutdown gracefully")
	}

	if err := sessionService.Close(); err != nil {
		log.Errorw("Error closing session storage", "error", err)
	}

	log.Info("Vidgram web host stopped")
}
