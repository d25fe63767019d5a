package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage persists generated files, currently the archived copies of
// attendance exports.
type FileStorage interface {
	// Upload writes the file under path and returns the stored path/key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a stored file.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// GetURL returns a URL under which the file can be fetched.
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}
