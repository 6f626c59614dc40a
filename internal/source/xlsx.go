package source

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"vypiska/internal/core"
)

// XLSXLoader reads statement rows from an Excel export. The first row of
// the sheet is the header.
type XLSXLoader struct {
	path  string
	sheet string
}

// NewXLSXLoader builds a loader for path. sheet may be empty, in which
// case the workbook's first sheet is used.
func NewXLSXLoader(path, sheet string) *XLSXLoader {
	return &XLSXLoader{path: path, sheet: sheet}
}

func (l *XLSXLoader) Load(ctx context.Context) ([]core.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", l.path, err)
	}
	defer f.Close()

	sheet := l.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	return rowsToRaw(rows[0], rows[1:]), nil
}
