package storage

import (
	"context"
	"io"
)

// AssetStore is the read-only origin for local-fallback photo files. The
// catalog never writes at runtime; the store only opens and describes
// objects that shipped with the site.
type AssetStore interface {
	// Open returns the object's content. Callers must close the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists checks whether an object is present.
	Exists(ctx context.Context, key string) (bool, error)

	// ContentType returns the object's MIME type, best effort.
	ContentType(ctx context.Context, key string) (string, error)
}

// Config selects and configures a backend.
type Config struct {
	// Local directory backend
	Dir string

	// S3/R2-compatible backend; used when Bucket is non-empty
	Bucket    string
	AccountID string
	AccessKey string
	SecretKey string
}
