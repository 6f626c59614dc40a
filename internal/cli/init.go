// Package cli provides common CLI initialization utilities shared by
// cmd/vypiska and cmd/vypiska-report.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"vypiska/internal/config"
	"vypiska/internal/core"
	applog "vypiska/internal/log"
	"vypiska/internal/source"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *applog.Logger {
	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitLoader builds the statement loader the config names.
// Returns the loader or exits the process on failure.
func InitLoader(ctx context.Context, logger *slog.Logger, cfg *config.Config) source.Loader {
	loader, err := source.NewLoader(ctx, cfg.SourceConfig(), logger)
	if err != nil {
		logger.Error("failed to initialize statement source",
			applog.FieldError, err,
			applog.FieldBackend, cfg.StatementBackend)
		os.Exit(1)
	}
	return loader
}

// LoadStatement reads and logs the raw statement rows.
// Returns the rows or exits the process on failure.
func LoadStatement(ctx context.Context, logger *slog.Logger, loader source.Loader) []core.RawRow {
	rows, err := loader.Load(ctx)
	if err != nil {
		logger.Error("failed to load statement", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("loaded statement", applog.FieldRows, len(rows))
	return rows
}
