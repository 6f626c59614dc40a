package source

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func TestBackendIsValid(t *testing.T) {
	for _, b := range Backends() {
		if !b.IsValid() {
			t.Errorf("%s should be valid", b)
		}
	}
	for _, b := range []Backend{"", "excel", "postgres"} {
		if b.IsValid() {
			t.Errorf("%q should be invalid", b)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"xlsx with path", Config{Type: XLSXBackend, Path: "operations.xlsx"}, false},
		{"xlsx without path", Config{Type: XLSXBackend}, true},
		{"csv with path", Config{Type: CSVBackend, Path: "operations.csv"}, false},
		{"sqlite without table", Config{Type: SQLiteBackend, Path: "statement.db"}, true},
		{"sqlite complete", Config{Type: SQLiteBackend, Path: "statement.db", Table: "operations"}, false},
		{"sheets without credentials", Config{Type: SheetsBackend, SpreadsheetID: "abc"}, true},
		{"sheets with inline credentials", Config{Type: SheetsBackend, SpreadsheetID: "abc", CredentialsJSON: "{}"}, false},
		{"unknown backend", Config{Type: "excel"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewLoader(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	if _, err := NewLoader(ctx, Config{Type: "excel"}, logger); err == nil {
		t.Error("expected error for unknown backend")
	}

	loader, err := NewLoader(ctx, Config{Type: CSVBackend, Path: "operations.csv"}, logger)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := loader.(*CSVLoader); !ok {
		t.Errorf("loader = %T, want *CSVLoader", loader)
	}

	loader, err = NewLoader(ctx, Config{Type: SQLiteBackend, Path: "statement.db", Table: "operations"}, logger)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := loader.(*SQLiteLoader); !ok {
		t.Errorf("loader = %T, want *SQLiteLoader", loader)
	}
}
