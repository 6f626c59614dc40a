// Package source loads raw bank statement rows from the supported
// backends. Loaders return header-keyed rows; parsing and validation
// happen in core.Normalize.
package source

import (
	"context"

	"vypiska/internal/core"
)

// Loader reads every statement row from a backend.
type Loader interface {
	Load(ctx context.Context) ([]core.RawRow, error)
}
