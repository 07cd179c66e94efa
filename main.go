package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notes-api/config"
	"notes-api/config/setup"
	"notes-api/telemetry"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	logger := setup.NewLogger(cfg)
	slog.SetDefault(logger)

	ctx := context.Background()

	shutdownTracer := telemetry.InitTracer(ctx, telemetry.TracerConfig{
		Enabled:     cfg.OTelEnabled,
		Endpoint:    cfg.OTelEndpoint,
		ServiceName: cfg.ServiceName,
	}, logger)

	connectCtx, cancelConnect := context.WithTimeout(ctx, 15*time.Second)
	db, err := setup.InitDatabase(connectCtx, cfg.DatabaseURL, logger)
	cancelConnect()
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		shutdownTracer(ctx)
		return 1
	}

	// Runs on every exit path below, including a failed Listen.
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		setup.Shutdown(shutdownCtx, db, shutdownTracer, logger)
	}()

	application := setup.InitApp(db, logger)

	app := setup.NewFiberApp(cfg, logger)
	setup.ApplyMiddleware(app, cfg, logger)
	setup.RegisterRoutes(app, application)

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Env)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.Listen(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed", "error", err)
		return 1
	case <-quit:
	}

	logger.Info("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
	return 0
}
