package source

import (
	"context"
	"testing"
)

func TestNewSheetsLoader_MissingConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  SheetsConfig
	}{
		{"no spreadsheet id", SheetsConfig{CredentialsJSON: "{}"}},
		{"no credentials", SheetsConfig{SpreadsheetID: "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSheetsLoader(context.Background(), tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"Фастфуд", "Фастфуд"},
		{float64(-7900), "-7900"},
		{120.5, "120.5"},
		{true, "true"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := cellString(tt.in); got != tt.want {
			t.Errorf("cellString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
