package setup

import (
	"context"
	"log/slog"

	"notes-api/app"
	"notes-api/database"
)

// InitDatabase configures the connection pool, connects and creates the
// schema. Any failure is fatal for the caller: the pool is released and the
// server must not start.
func InitDatabase(ctx context.Context, databaseURL string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.Configure(databaseURL)
	if err != nil {
		return nil, err
	}

	if err := db.Connect(ctx); err != nil {
		return nil, err
	}

	if err := db.EnsureSchema(ctx); err != nil {
		db.Disconnect()
		return nil, err
	}

	logger.Info("database initialized", "dialect", db.Dialect())
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)

	application := app.New(repo, db, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown releases the database pool and flushes telemetry.
func Shutdown(ctx context.Context, db *database.DB, shutdownTracer func(context.Context) error, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if shutdownTracer != nil {
		if err := shutdownTracer(ctx); err != nil {
			logger.Error("failed to flush traces", "error", err)
		}
	}

	if db != nil {
		if err := db.Disconnect(); err != nil {
			logger.Error("failed to close database", "error", err)
		} else {
			logger.Info("database closed")
		}
	}
}
