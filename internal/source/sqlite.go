package source

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite"

	"vypiska/internal/core"
)

// identifier guards the table name interpolated into the query.
var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteLoader reads statement rows from a table in a SQLite export.
// Column names become row keys, so the table is expected to carry the
// statement's original column labels.
type SQLiteLoader struct {
	path  string
	table string
}

func NewSQLiteLoader(path, table string) (*SQLiteLoader, error) {
	if !identifier.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &SQLiteLoader{path: path, table: table}, nil
}

func (l *SQLiteLoader) Load(ctx context.Context) ([]core.RawRow, error) {
	db, err := sql.Open("sqlite", l.path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", l.table))
	if err != nil {
		return nil, fmt.Errorf("query table %s: %w", l.table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var out []core.RawRow
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		raw := make(core.RawRow, len(columns))
		for i, col := range columns {
			if values[i].Valid {
				raw[col] = values[i].String
			}
		}
		out = append(out, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return out, nil
}
