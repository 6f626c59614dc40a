package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"vypiska/internal/core"
)

// SheetsConfig carries what a read-only Sheets client needs. Exactly one
// of CredentialsJSON or CredentialsFile must be set.
type SheetsConfig struct {
	SpreadsheetID   string
	SheetName       string
	CredentialsJSON string
	CredentialsFile string
}

// SheetsLoader reads statement rows from a Google Sheets spreadsheet
// kept in sync with the bank export. Row one is the header.
type SheetsLoader struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheet         string
}

// NewSheetsLoader creates a Sheets client using service account
// credentials with read-only scope.
func NewSheetsLoader(ctx context.Context, cfg SheetsConfig) (*SheetsLoader, error) {
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("missing spreadsheet id")
	}

	var credentialsJSON []byte
	switch {
	case cfg.CredentialsJSON != "":
		credentialsJSON = []byte(cfg.CredentialsJSON)
	case cfg.CredentialsFile != "":
		b, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		credentialsJSON = b
	default:
		return nil, errors.New("missing service account credentials")
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	sheet := cfg.SheetName
	if sheet == "" {
		sheet = "Transactions"
	}

	return &SheetsLoader{svc: svc, spreadsheetID: cfg.SpreadsheetID, sheet: sheet}, nil
}

func (l *SheetsLoader) Load(ctx context.Context) ([]core.RawRow, error) {
	resp, err := l.svc.Spreadsheets.Values.Get(l.spreadsheetID, l.sheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", l.sheet, err)
	}
	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", l.sheet)
	}

	header := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		header[i] = cellString(cell)
	}

	data := make([][]string, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cellString(cell)
		}
		data = append(data, cells)
	}

	return rowsToRaw(header, data), nil
}

// cellString renders a Sheets API cell value. The API returns any of
// string, float64, or bool depending on cell formatting.
func cellString(v any) string {
	switch c := v.(type) {
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(c)
	case nil:
		return ""
	default:
		return fmt.Sprint(c)
	}
}
