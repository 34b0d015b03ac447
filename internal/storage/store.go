package storage

import (
	"context"
	"io"
)

// Store is a write target for generated files, such as a static export.
type Store interface {
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
}
