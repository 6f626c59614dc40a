package source

import (
	"context"
	"fmt"
	"log/slog"

	applog "vypiska/internal/log"
)

// Backend names a statement source implementation.
type Backend string

const (
	XLSXBackend   Backend = "xlsx"
	CSVBackend    Backend = "csv"
	SQLiteBackend Backend = "sqlite"
	SheetsBackend Backend = "sheets"
)

// String implements fmt.Stringer
func (b Backend) String() string {
	return string(b)
}

// IsValid returns true if the backend name is known.
func (b Backend) IsValid() bool {
	switch b {
	case XLSXBackend, CSVBackend, SQLiteBackend, SheetsBackend:
		return true
	default:
		return false
	}
}

// Backends returns every valid backend name.
func Backends() []Backend {
	return []Backend{XLSXBackend, CSVBackend, SQLiteBackend, SheetsBackend}
}

// Config holds what the factory needs to build any loader.
type Config struct {
	Type Backend

	// file-backed backends
	Path  string
	Sheet string

	// sqlite specific
	Table string

	// Google Sheets specific
	SpreadsheetID   string
	SheetName       string
	CredentialsJSON string
	CredentialsFile string
}

// Validate checks that the fields the chosen backend needs are present.
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid statement backend: %s", c.Type)
	}

	switch c.Type {
	case XLSXBackend, CSVBackend:
		if c.Path == "" {
			return fmt.Errorf("statement path is required for %s backend", c.Type)
		}
	case SQLiteBackend:
		if c.Path == "" {
			return fmt.Errorf("database path is required for sqlite backend")
		}
		if c.Table == "" {
			return fmt.Errorf("table name is required for sqlite backend")
		}
	case SheetsBackend:
		if c.SpreadsheetID == "" {
			return fmt.Errorf("spreadsheet id is required for sheets backend")
		}
		if c.CredentialsJSON == "" && c.CredentialsFile == "" {
			return fmt.Errorf("service account credentials are required for sheets backend")
		}
	}
	return nil
}

// NewLoader builds the loader the config names.
func NewLoader(ctx context.Context, cfg Config, logger *slog.Logger) (Loader, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Type {
	case XLSXBackend:
		logger.Info("initialized xlsx source",
			applog.FieldBackend, cfg.Type.String(),
			applog.FieldPath, cfg.Path,
			applog.FieldSheet, cfg.Sheet)
		return NewXLSXLoader(cfg.Path, cfg.Sheet), nil

	case CSVBackend:
		logger.Info("initialized csv source",
			applog.FieldBackend, cfg.Type.String(),
			applog.FieldPath, cfg.Path)
		return NewCSVLoader(cfg.Path), nil

	case SQLiteBackend:
		loader, err := NewSQLiteLoader(cfg.Path, cfg.Table)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite source: %w", err)
		}
		logger.Info("initialized sqlite source",
			applog.FieldBackend, cfg.Type.String(),
			applog.FieldPath, cfg.Path,
			applog.FieldTable, cfg.Table)
		return loader, nil

	case SheetsBackend:
		loader, err := NewSheetsLoader(ctx, SheetsConfig{
			SpreadsheetID:   cfg.SpreadsheetID,
			SheetName:       cfg.SheetName,
			CredentialsJSON: cfg.CredentialsJSON,
			CredentialsFile: cfg.CredentialsFile,
		})
		if err != nil {
			return nil, fmt.Errorf("initialize sheets source: %w", err)
		}
		logger.Info("initialized sheets source",
			applog.FieldBackend, cfg.Type.String(),
			applog.FieldSheet, cfg.SheetName)
		return loader, nil

	default:
		return nil, fmt.Errorf("unsupported statement backend: %s", cfg.Type)
	}
}
