package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"vypiska/internal/core"
)

// CSVLoader reads statement rows from a semicolon-separated CSV export,
// the format banks typically produce alongside the Excel one.
type CSVLoader struct {
	path  string
	comma rune
}

func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path, comma: ';'}
}

func (l *CSVLoader) Load(ctx context.Context) ([]core.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open csv %s: %w", l.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = l.comma
	// exports sometimes leave ragged trailing columns
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", l.path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv %s has no header row", l.path)
	}

	return rowsToRaw(records[0], records[1:]), nil
}
